package ports

import (
	"context"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
)

// RegisterInput carries the self-service registration fields.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Email    string
	Phone    string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
