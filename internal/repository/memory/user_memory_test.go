package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/lumedental/clinic-api/internal/domain/entity"
	domainRepo "github.com/lumedental/clinic-api/internal/domain/repository"

	"github.com/google/uuid"
)

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{Username: "drsmith", Password: "hashed"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := repo.FindByUsername(ctx, "drsmith")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if byName.ID != u.ID {
		t.Fatal("id mismatch")
	}

	byID, err := repo.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if byID.Username != "drsmith" {
		t.Fatalf("unexpected username %q", byID.Username)
	}
}

func TestUserDuplicateUsername(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &entity.User{Username: "drsmith", Password: "first"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Create(ctx, &entity.User{Username: "drsmith", Password: "second"})
	if !errors.Is(err, domainRepo.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	// original record untouched
	u, err := repo.FindByUsername(ctx, "drsmith")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.Password != "first" {
		t.Fatalf("stored password hash changed: %q", u.Password)
	}
}

func TestUserNotFound(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.FindByUsername(ctx, "nobody"); !errors.Is(err, domainRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
