package domain

import "time"

// Roles the service assigns or checks. The stored role is free-form.
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// Address is the default delivery address stored on a user profile.
type Address struct {
	Street    string `json:"street,omitempty" bson:"street,omitempty"`
	Ward      string `json:"ward,omitempty" bson:"ward,omitempty"`
	District  string `json:"district,omitempty" bson:"district,omitempty"`
	City      string `json:"city,omitempty" bson:"city,omitempty"`
	IsDefault bool   `json:"isDefault" bson:"isDefault"`
}

// User models a customer, staff member or administrator.
// PasswordHash never leaves the service boundary in API responses.
type User struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"-"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Addresses       *Address  `json:"addresses,omitempty"`
	Role            string    `json:"role,omitempty"`
	FaceDescriptor  []float64 `json:"faceDescriptor,omitempty"`
	FaceEnrolled    bool      `json:"faceEnrolled"`
	EnrollmentPhoto string    `json:"enrollmentPhoto,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
