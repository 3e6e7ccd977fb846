package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type stubUserService struct {
	created ports.CreateUserInput
	updated ports.UpdateUserInput
	err     error
}

func (s *stubUserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: "u1", Username: in.Username, Role: domain.RoleStaff}, nil
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "u1", Username: "alice"}}, s.err
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id}, nil
}

func (s *stubUserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	s.updated = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id, FaceEnrolled: in.FaceEnrolled != nil && *in.FaceEnrolled}, nil
}

func TestUserHandler_Create(t *testing.T) {
	stub := &stubUserService{}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/users", `{"name":"Staff","username":"staff1","password":"pw","role":"staff","addresses":{"city":"Hue"}}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.created.Role != "staff" || stub.created.Addresses == nil || stub.created.Addresses.City != "Hue" {
		t.Fatalf("unexpected input: %+v", stub.created)
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPost, "/users", `{"name":"S","username":"s","password":"pw","email":"nope"}`)
	if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Update_FaceEnrollment(t *testing.T) {
	stub := &stubUserService{}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/users/u1", `{"faceDescriptor":[0.1,0.2],"faceEnrolled":true}`)
	withID(c, "u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || decodeBody(t, rec)["faceEnrolled"] != true {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if len(stub.updated.FaceDescriptor) != 2 || stub.updated.Name != nil || stub.updated.Password != nil {
		t.Fatalf("unexpected update: %+v", stub.updated)
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrUserNotFound})

	c, _ := newTestContext(http.MethodGet, "/users/nope", "")
	withID(c, "nope")
	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
