package domain

import "time"

// Item is a menu product. Items are managed outside this service and only read here.
type Item struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ComboItem references a product bundled in a combo.
type ComboItem struct {
	ProductID   string `json:"productId,omitempty" bson:"productId,omitempty"`
	ProductName string `json:"productName" bson:"productName"`
	Quantity    int    `json:"quantity" bson:"quantity"`
}

// Combo is a promotional bundle of products sold at a single price.
type Combo struct {
	ID            string      `json:"_id" bson:"_id,omitempty"`
	Name          string      `json:"name" bson:"name"`
	Description   string      `json:"description,omitempty" bson:"description,omitempty"`
	Items         []ComboItem `json:"items" bson:"items"`
	Price         float64     `json:"price" bson:"price"`
	OriginalPrice float64     `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Image         string      `json:"image,omitempty" bson:"image,omitempty"`
	IsActive      bool        `json:"isActive" bson:"isActive"`
	StartDate     *time.Time  `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate       *time.Time  `json:"endDate,omitempty" bson:"endDate,omitempty"`
	CreatedAt     time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt" bson:"updatedAt"`
}
