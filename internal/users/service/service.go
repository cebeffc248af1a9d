package service

import (
	"context"
	"time"

	"gig_venues_backend/internal/users/repository"
	"gig_venues_backend/platform/apperr"
	"gig_venues_backend/platform/config"
	"gig_venues_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

const (
	publicRegistrationError = "Error on registration"
	publicBadCredentials    = "Incorrect username or password"
)

type Service struct {
	repo repository.UsersRepository
	cfg  config.TokenIssuerConfig
	log  *logger.Logger
}

func New(repo repository.UsersRepository, cfg config.TokenIssuerConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

// Register hashes the password and stores the new account. Every
// persistence failure, duplicate usernames and emails included, surfaces as
// an internal error with the fixed registration public message.
func (s *Service) Register(ctx context.Context, username, password, email string) (repository.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return repository.User{}, apperr.Wrap(apperr.KindInternal, "hash password", publicRegistrationError, err)
	}

	user, err := s.repo.CreateUser(ctx, username, string(hash), email)
	if err != nil {
		s.log.AuthEvent("register", username, false, err.Error())
		return repository.User{}, apperr.Wrap(apperr.KindInternal, "create user", publicRegistrationError, err)
	}

	s.log.AuthEvent("register", username, true, "")
	return user, nil
}

// Login verifies the credentials and issues a signed token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		s.log.AuthEvent("login", username, false, "unknown username")
		return "", apperr.Wrap(apperr.KindUnauthorized, "incorrect username", publicBadCredentials, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.AuthEvent("login", username, false, "incorrect password")
		return "", apperr.Unauthorized("incorrect password", publicBadCredentials)
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "sign token", apperr.FallbackPublicMessage, err)
	}

	s.log.AuthEvent("login", username, true, "")
	return token, nil
}

func (s *Service) signToken(user repository.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID.String(),
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.cfg.GetTokenTTL()).Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTSecret()))
}
