package domain

import "testing"

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range OrderStatuses {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "pending", "Shipped", "CANCELLED"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestOrder_ItemsTotal(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{ProductName: "Latte", Quantity: 2, Price: 45000},
		{ProductName: "Croissant", Quantity: 1, Price: 30000},
	}}
	if got := o.ItemsTotal(); got != 120000 {
		t.Fatalf("expected 120000, got %v", got)
	}
}
