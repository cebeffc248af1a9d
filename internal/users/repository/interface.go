package repository

import (
	"context"
)

// UsersRepository defines the interface for user persistence.
// Services depend on this abstraction rather than the pgx implementation,
// improving testability and modularity.
type UsersRepository interface {
	CreateUser(ctx context.Context, username, passwordHash, email string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

// Ensure Repository implements UsersRepository
var _ UsersRepository = (*Repository)(nil)
