package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by id
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "u_" + user.Username
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.FaceDescriptor != nil {
		u.FaceDescriptor = upd.FaceDescriptor
	}
	if upd.FaceEnrolled != nil {
		u.FaceEnrolled = *upd.FaceEnrolled
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func register(t *testing.T, svc *AuthService, username, password, role string) *domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Name " + username,
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s failed: %v", username, err)
	}
	return u
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	user := register(t, svc, "alice", "pass123", "")
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if cost, _ := bcrypt.Cost([]byte(user.PasswordHash)); cost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cost)
	}
	if user.Role != domain.RoleCustomer {
		t.Fatalf("expected default role customer, got %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	cases := []ports.RegisterInput{
		{Username: "bob", Password: "pass"},
		{Name: "Bob", Password: "pass"},
		{Name: "Bob", Username: "bob"},
		{Name: "Bob", Username: "   ", Password: "pass"},
	}
	for i, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestAuthService_Register_FreeFormRole(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	user := register(t, svc, "frank", "pass", " barista ")
	if user.Role != "barista" {
		t.Fatalf("expected role barista, got %q", user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	register(t, svc, "bob", "pass", domain.RoleStaff)
	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob", Username: "bob", Password: "pass2"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_LookupFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("mongo down")
	svc := NewAuthService(repo, "secret", time.Hour)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Bob", Username: "bob", Password: "p"})
	if err == nil || errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected storage error to surface, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	created := register(t, svc, "carol", "s3cret", domain.RoleAdmin)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if parsed.Method != jwt.SigningMethodHS256 {
		t.Fatalf("expected HS256, got %v", parsed.Method.Alg())
	}
	if claims["id"] != created.ID {
		t.Fatalf("expected id claim %s, got %v", created.ID, claims["id"])
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role claim admin, got %v", claims["role"])
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected exp claim: %v", err)
	}
	if d := time.Until(exp.Time); d <= 0 || d > time.Hour+time.Minute {
		t.Fatalf("unexpected token lifetime: %v", d)
	}
}

func TestAuthService_Login_TrimsUsernameLikeRegister(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	created := register(t, svc, " bob ", "pass", "")
	if created.Username != "bob" {
		t.Fatalf("expected stored username bob, got %q", created.Username)
	}

	_, user, err := svc.Login(context.Background(), " bob ", "pass")
	if err != nil {
		t.Fatalf("login with the registration input failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "nobody", "x"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)
	register(t, svc, "dave", "right", "")

	if _, _, err := svc.Login(context.Background(), "dave", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNewAuthService_DefaultTTL(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", 0)
	if svc.tokenTTL != 24*time.Hour {
		t.Fatalf("expected default ttl of 24h, got %v", svc.tokenTTL)
	}
}
