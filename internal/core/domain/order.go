package domain

import "time"

// OrderStatus represents the lifecycle state of an order. Any status may be
// written over any other; only membership in OrderStatuses is enforced.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusUnpaid     OrderStatus = "Unpaid"
	StatusConfirmed  OrderStatus = "Confirmed"
	StatusDelivering OrderStatus = "Delivering"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusUnpaid,
	StatusConfirmed,
	StatusDelivering,
	StatusDelivered,
	StatusCancelled,
}

// IsValid reports whether s is one of the six known statuses.
func (s OrderStatus) IsValid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DeliveryAddress is where an order is shipped and who receives it.
type DeliveryAddress struct {
	Street   string `json:"street,omitempty" bson:"street,omitempty"`
	Ward     string `json:"ward,omitempty" bson:"ward,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
	City     string `json:"city,omitempty" bson:"city,omitempty"`
	FullName string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID   string  `json:"productId,omitempty" bson:"productId,omitempty"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Price       float64 `json:"price" bson:"price"`
}

// Order is the aggregate root of the ordering flow.
type Order struct {
	ID              string          `json:"_id" bson:"_id,omitempty"`
	UserID          string          `json:"userId,omitempty" bson:"userId,omitempty"`
	Status          OrderStatus     `json:"status" bson:"status"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress" bson:"deliveryAddress"`
	Items           []OrderItem     `json:"items" bson:"items"`
	PaymentMethod   string          `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	TotalAmount     float64         `json:"totalAmount" bson:"totalAmount"`
	Note            string          `json:"note,omitempty" bson:"note,omitempty"`
	OrderDate       time.Time       `json:"orderDate" bson:"orderDate"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// ItemsTotal sums price*quantity over all lines.
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
