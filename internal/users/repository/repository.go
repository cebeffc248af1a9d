package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is a stored account. PasswordHash only ever holds the bcrypt digest;
// the plaintext never reaches this layer.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
}

const createUserQuery = `
	INSERT INTO users (username, password_hash, email)
	VALUES ($1, $2, $3)
	RETURNING id, username, email, password_hash`

const getUserByUsernameQuery = `
	SELECT id, username, email, password_hash
	FROM users
	WHERE username = $1`

// Repository implements UsersRepository over Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new users repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreateUser inserts a new account. Unique violations on username or email
// surface as plain errors; the service decides how they reach the client.
func (r *Repository) CreateUser(ctx context.Context, username, passwordHash, email string) (User, error) {
	var user User
	if err := r.pool.QueryRow(ctx, createUserQuery, username, passwordHash, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
	); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUserByUsername fetches an account by its unique username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User
	if err := r.pool.QueryRow(ctx, getUserByUsernameQuery, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
	); err != nil {
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}
