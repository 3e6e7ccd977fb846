package domain

import "errors"

var (
	ErrValidation          = errors.New("validation failed")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid password")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrOrderConflict       = errors.New("order was modified concurrently")
	ErrItemNotFound        = errors.New("item not found")
	ErrComboNotFound       = errors.New("combo not found")
	ErrInvalidNotification = errors.New("title and body are required")
)
