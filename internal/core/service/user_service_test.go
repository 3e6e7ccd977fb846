package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func TestUserService_CreateUser_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:         "Erin",
		Username:     "erin",
		Password:     "hunter2",
		Role:         domain.RoleStaff,
		FaceEnrolled: true,
	})
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")) != nil {
		t.Fatalf("expected stored bcrypt hash")
	}
	if !user.FaceEnrolled || user.Role != domain.RoleStaff {
		t.Fatalf("profile fields not persisted: %+v", user)
	}
}

func TestUserService_CreateUser_RequiresPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{Name: "Erin", Username: "erin"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	in := ports.CreateUserInput{Name: "Erin", Username: "erin", Password: "p"}

	if _, err := svc.CreateUser(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user, _ := svc.CreateUser(context.Background(), ports.CreateUserInput{Name: "Erin", Username: "erin", Password: "old"})

	updated, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{
		Password:       strPtr("new"),
		FaceDescriptor: []float64{0.1, 0.2},
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new")) != nil {
		t.Fatalf("expected new password to be hashed and stored")
	}
	if len(updated.FaceDescriptor) != 2 {
		t.Fatalf("expected face descriptor to be stored, got %v", updated.FaceDescriptor)
	}
}

func TestUserService_UpdateUser_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	user, _ := svc.CreateUser(context.Background(), ports.CreateUserInput{Name: "Erin", Username: "erin", Password: "p"})

	updated, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{Role: strPtr(" cashier ")})
	if err != nil || updated.Role != "cashier" {
		t.Fatalf("expected free-form role to be stored, got %+v, %v", updated, err)
	}
	if _, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{Name: strPtr("  ")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank name, got %v", err)
	}
	if _, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{Password: strPtr("")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty password, got %v", err)
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateUser(context.Background(), "missing", ports.UpdateUserInput{Email: strPtr("x@y.z")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
