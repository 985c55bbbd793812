package repository

import (
	"context"
	"errors"

	"github.com/lumedental/clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateUsername is returned by Create when the username is taken.
// The Postgres implementation maps unique-index violations (23505) to this
// error so the check-then-insert race in the usecase has a last-resort guard.
var ErrDuplicateUsername = errors.New("username already exists")

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
