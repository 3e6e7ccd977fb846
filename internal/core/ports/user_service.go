package ports

import (
	"context"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// CreateUserInput is the admin-side user creation payload.
type CreateUserInput struct {
	Name            string
	Username        string
	Password        string
	Email           string
	Phone           string
	Addresses       *domain.Address
	Role            string
	FaceDescriptor  []float64
	FaceEnrolled    bool
	EnrollmentPhoto string
}

// UpdateUserInput carries a partial profile update. Password, when set, is plaintext.
type UpdateUserInput struct {
	Name            *string
	Email           *string
	Phone           *string
	Addresses       *domain.Address
	Role            *string
	Password        *string
	FaceDescriptor  []float64
	FaceEnrolled    *bool
	EnrollmentPhoto *string
}

type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
}
