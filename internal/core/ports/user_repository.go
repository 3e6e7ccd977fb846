package ports

import (
	"context"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// UserUpdate lists the profile fields that may change. Nil means "leave as is".
type UserUpdate struct {
	Name            *string
	Email           *string
	Phone           *string
	Addresses       *domain.Address
	Role            *string
	PasswordHash    *string
	FaceDescriptor  []float64
	FaceEnrolled    *bool
	EnrollmentPhoto *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
}
