package handler

import (
	"time"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

// --- Auth & users ---

type registerRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Name            string          `json:"name" validate:"required,notblank"`
	Username        string          `json:"username" validate:"required,notblank"`
	Password        string          `json:"password" validate:"required"`
	Email           string          `json:"email" validate:"omitempty,email"`
	Phone           string          `json:"phone"`
	Addresses       *domain.Address `json:"addresses"`
	Role            string          `json:"role"`
	FaceDescriptor  []float64       `json:"faceDescriptor"`
	FaceEnrolled    bool            `json:"faceEnrolled"`
	EnrollmentPhoto string          `json:"enrollmentPhoto"`
}

type updateUserRequest struct {
	Name            *string         `json:"name"`
	Email           *string         `json:"email" validate:"omitempty,email"`
	Phone           *string         `json:"phone"`
	Addresses       *domain.Address `json:"addresses"`
	Role            *string         `json:"role"`
	Password        *string         `json:"password"`
	FaceDescriptor  []float64       `json:"faceDescriptor"`
	FaceEnrolled    *bool           `json:"faceEnrolled"`
	EnrollmentPhoto *string         `json:"enrollmentPhoto"`
}

func (r createUserRequest) toInput() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:            r.Name,
		Username:        r.Username,
		Password:        r.Password,
		Email:           r.Email,
		Phone:           r.Phone,
		Addresses:       r.Addresses,
		Role:            r.Role,
		FaceDescriptor:  r.FaceDescriptor,
		FaceEnrolled:    r.FaceEnrolled,
		EnrollmentPhoto: r.EnrollmentPhoto,
	}
}

func (r updateUserRequest) toInput() ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Addresses:       r.Addresses,
		Role:            r.Role,
		Password:        r.Password,
		FaceDescriptor:  r.FaceDescriptor,
		FaceEnrolled:    r.FaceEnrolled,
		EnrollmentPhoto: r.EnrollmentPhoto,
	}
}

// --- Orders ---

type orderItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type createOrderRequest struct {
	UserID          string                 `json:"userId"`
	Status          string                 `json:"status"`
	DeliveryAddress domain.DeliveryAddress `json:"deliveryAddress"`
	Items           []orderItemRequest     `json:"items" validate:"dive"`
	PaymentMethod   string                 `json:"paymentMethod"`
	TotalAmount     *float64               `json:"totalAmount" validate:"omitempty,gte=0"`
	Note            string                 `json:"note"`
	OrderDate       *time.Time             `json:"orderDate"`
}

type updateOrderRequest struct {
	UserID          *string                 `json:"userId"`
	Status          *string                 `json:"status"`
	DeliveryAddress *domain.DeliveryAddress `json:"deliveryAddress"`
	Items           []orderItemRequest      `json:"items" validate:"omitempty,dive"`
	PaymentMethod   *string                 `json:"paymentMethod"`
	TotalAmount     *float64                `json:"totalAmount" validate:"omitempty,gte=0"`
	Note            *string                 `json:"note"`
	OrderDate       *time.Time              `json:"orderDate"`
}

type patchStatusRequest struct {
	Status string `json:"status"`
}

func toOrderItems(in []orderItemRequest) []domain.OrderItem {
	if in == nil {
		return nil
	}
	out := make([]domain.OrderItem, len(in))
	for i, it := range in {
		out[i] = domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
	}
	return out
}

func (r createOrderRequest) toInput() ports.CreateOrderInput {
	return ports.CreateOrderInput{
		UserID:          r.UserID,
		Status:          r.Status,
		DeliveryAddress: r.DeliveryAddress,
		Items:           toOrderItems(r.Items),
		PaymentMethod:   r.PaymentMethod,
		TotalAmount:     r.TotalAmount,
		Note:            r.Note,
		OrderDate:       r.OrderDate,
	}
}

func (r updateOrderRequest) toInput() ports.UpdateOrderInput {
	return ports.UpdateOrderInput{
		UserID:          r.UserID,
		Status:          r.Status,
		DeliveryAddress: r.DeliveryAddress,
		Items:           toOrderItems(r.Items),
		PaymentMethod:   r.PaymentMethod,
		TotalAmount:     r.TotalAmount,
		Note:            r.Note,
		OrderDate:       r.OrderDate,
	}
}

// --- Combos ---

type comboItemRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
}

type createComboRequest struct {
	Name          string             `json:"name" validate:"required"`
	Description   string             `json:"description"`
	Items         []comboItemRequest `json:"items" validate:"dive"`
	Price         *float64           `json:"price" validate:"required,gte=0"`
	OriginalPrice float64            `json:"originalPrice" validate:"gte=0"`
	Image         string             `json:"image"`
	IsActive      *bool              `json:"isActive"`
	StartDate     *time.Time         `json:"startDate"`
	EndDate       *time.Time         `json:"endDate"`
}

type updateComboRequest struct {
	Name          *string            `json:"name"`
	Description   *string            `json:"description"`
	Items         []comboItemRequest `json:"items" validate:"omitempty,dive"`
	Price         *float64           `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64           `json:"originalPrice" validate:"omitempty,gte=0"`
	Image         *string            `json:"image"`
	IsActive      *bool              `json:"isActive"`
	StartDate     *time.Time         `json:"startDate"`
	EndDate       *time.Time         `json:"endDate"`
}

func toComboItems(in []comboItemRequest) []domain.ComboItem {
	if in == nil {
		return nil
	}
	out := make([]domain.ComboItem, len(in))
	for i, it := range in {
		out[i] = domain.ComboItem{ProductID: it.ProductID, ProductName: it.ProductName, Quantity: it.Quantity}
	}
	return out
}

func (r createComboRequest) toInput() ports.CreateComboInput {
	return ports.CreateComboInput{
		Name:          r.Name,
		Description:   r.Description,
		Items:         toComboItems(r.Items),
		Price:         *r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		IsActive:      r.IsActive,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

func (r updateComboRequest) toUpdate() ports.ComboUpdate {
	return ports.ComboUpdate{
		Name:          r.Name,
		Description:   r.Description,
		Items:         toComboItems(r.Items),
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Image:         r.Image,
		IsActive:      r.IsActive,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

// --- Notifications ---

// Title and body are checked by the service after trimming.
type notificationRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type"`
}

type notificationData struct {
	Title string                  `json:"title"`
	Body  string                  `json:"body"`
	Type  domain.NotificationType `json:"type"`
}

type notificationResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    notificationData `json:"data"`
}
