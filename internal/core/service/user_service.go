package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

// UserService covers the back-office user administration.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser creates a user on behalf of an administrator. Unlike self
// registration every profile field may be set, but a password is mandatory.
func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	if name == "" || username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, username and password are required", domain.ErrValidation)
	}

	role := roleOrDefault(in.Role)

	if err := ensureUsernameFree(ctx, s.repo, username); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.repo.Create(ctx, &domain.User{
		Name:            name,
		Username:        username,
		PasswordHash:    hash,
		Email:           in.Email,
		Phone:           in.Phone,
		Addresses:       in.Addresses,
		Role:            role,
		FaceDescriptor:  in.FaceDescriptor,
		FaceEnrolled:    in.FaceEnrolled,
		EnrollmentPhoto: in.EnrollmentPhoto,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies a partial profile update. A new password is hashed
// before it reaches the repository.
func (s *UserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	upd := ports.UserUpdate{
		Email:           in.Email,
		Phone:           in.Phone,
		Addresses:       in.Addresses,
		FaceDescriptor:  in.FaceDescriptor,
		FaceEnrolled:    in.FaceEnrolled,
		EnrollmentPhoto: in.EnrollmentPhoto,
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		upd.Name = &name
	}
	if in.Role != nil {
		role := strings.TrimSpace(*in.Role)
		upd.Role = &role
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", domain.ErrValidation)
		}
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Bool("password_changed", in.Password != nil).Msg("user updated")
	return user, nil
}
