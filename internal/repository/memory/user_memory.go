// Package memory holds mutex-guarded in-memory implementations of the
// storage interfaces. They are the reference backend for tests and for
// deployments without a database (STORAGE_DRIVER=memory).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/lumedental/clinic-api/internal/domain/entity"
	domainRepo "github.com/lumedental/clinic-api/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{users: make(map[uuid.UUID]*entity.User)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// uniqueness check under the write lock, mirroring the DB unique index
	for _, u := range r.users {
		if u.Username == user.Username {
			return domainRepo.ErrDuplicateUsername
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()

	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, domainRepo.ErrNotFound
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domainRepo.ErrNotFound
	}
	found := *u
	return &found, nil
}
