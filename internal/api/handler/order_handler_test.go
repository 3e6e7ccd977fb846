package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

// stubOrderService records the last call and returns order or err.
type stubOrderService struct {
	order *domain.Order
	err   error

	created  ports.CreateOrderInput
	updated  ports.UpdateOrderInput
	filter   ports.FilterOrdersInput
	lastID   string
	lastCall string
	status   string
}

func (s *stubOrderService) CreateOrder(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	s.lastCall, s.created = "create", in
	return s.order, s.err
}

func (s *stubOrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.lastCall, s.lastID = "get", id
	return s.order, s.err
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	s.lastCall = "list"
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Order{s.order}, nil
}

func (s *stubOrderService) FilterOrders(ctx context.Context, in ports.FilterOrdersInput) ([]*domain.Order, error) {
	s.lastCall, s.filter = "filter", in
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Order{}, nil
}

func (s *stubOrderService) UpdateOrder(ctx context.Context, id string, in ports.UpdateOrderInput) (*domain.Order, error) {
	s.lastCall, s.lastID, s.updated = "update", id, in
	return s.order, s.err
}

func (s *stubOrderService) ChangeStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	s.lastCall, s.lastID, s.status = "status", id, status
	return s.order, s.err
}

func (s *stubOrderService) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.lastCall, s.lastID = "cancel", id
	return s.order, s.err
}

func (s *stubOrderService) ConfirmOrder(ctx context.Context, id string) (*domain.Order, error) {
	s.lastCall, s.lastID = "confirm", id
	return s.order, s.err
}

func TestOrderHandler_Create(t *testing.T) {
	stub := &stubOrderService{order: &domain.Order{ID: "o1", Status: domain.StatusPending, Items: []domain.OrderItem{}}}
	h := NewOrderHandler(stub)

	body := `{"userId":"u1","deliveryAddress":{"city":"Hanoi","fullName":"An"},"items":[{"productName":"Latte","quantity":2,"price":3.5}],"paymentMethod":"cash"}`
	c, rec := newTestContext(http.MethodPost, "/orders", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["message"] != "Order created successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if order, ok := resp["order"].(map[string]any); !ok || order["_id"] != "o1" {
		t.Fatalf("unexpected order payload: %+v", resp["order"])
	}

	in := stub.created
	if in.UserID != "u1" || in.DeliveryAddress.City != "Hanoi" || in.PaymentMethod != "cash" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Items) != 1 || in.Items[0].Quantity != 2 || in.Items[0].Price != 3.5 {
		t.Fatalf("items not mapped: %+v", in.Items)
	}
	if in.TotalAmount != nil {
		t.Fatalf("absent totalAmount must stay nil")
	}
}

func TestOrderHandler_Create_RejectsBadItems(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	for _, body := range []string{
		`{"items":[{"productName":"Latte","quantity":0,"price":1}]}`,
		`{"items":[{"quantity":1,"price":1}]}`,
		`{"totalAmount":-1}`,
		`[]`,
	} {
		c, _ := newTestContext(http.MethodPost, "/orders", body)
		if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, code)
		}
	}
}

func TestOrderHandler_Filter_PassesQuery(t *testing.T) {
	stub := &stubOrderService{}
	h := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/orders/filter?userId=u1&status_ne=Cancelled&city=Hanoi&date_from=2024-06-01&keyword=latte", "")
	if err := h.Filter(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Fatalf("expected empty array, got %d %q", rec.Code, rec.Body.String())
	}
	want := ports.FilterOrdersInput{UserID: "u1", StatusNot: "Cancelled", City: "Hanoi", DateFrom: "2024-06-01", Keyword: "latte"}
	if stub.filter != want {
		t.Fatalf("unexpected filter: %+v", stub.filter)
	}
}

func TestOrderHandler_StatusRoutes(t *testing.T) {
	order := &domain.Order{ID: "o1", Status: domain.StatusConfirmed}

	cases := []struct {
		name     string
		body     string
		wantCall string
		wantMsg  string
	}{
		{"confirm", "", "confirm", "Order confirmed successfully"},
		{"cancel", "", "cancel", "Order cancelled successfully"},
		{"patch", `{"status":"Confirmed"}`, "status", "Order status updated successfully"},
		{"update", `{"note":"less ice"}`, "update", "Order updated successfully"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubOrderService{order: order}
			h := NewOrderHandler(stub)

			method := http.MethodPost
			if tc.body != "" {
				method = http.MethodPut
			}
			c, rec := newTestContext(method, "/orders/o1", tc.body)
			withID(c, "o1")

			var err error
			switch tc.name {
			case "confirm":
				err = h.Confirm(c)
			case "cancel":
				err = h.Cancel(c)
			case "patch":
				err = h.PatchStatus(c)
			case "update":
				err = h.Update(c)
			}
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if stub.lastCall != tc.wantCall || stub.lastID != "o1" {
				t.Fatalf("expected %s(o1), got %s(%s)", tc.wantCall, stub.lastCall, stub.lastID)
			}
			resp := decodeBody(t, rec)
			if rec.Code != http.StatusOK || resp["message"] != tc.wantMsg {
				t.Fatalf("unexpected response %d %+v", rec.Code, resp)
			}
		})
	}
}

func TestOrderHandler_PatchStatus_ForwardsRawStatus(t *testing.T) {
	stub := &stubOrderService{err: domain.ErrInvalidStatus}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPatch, "/orders/o1/status", `{"status":"shipped"}`)
	withID(c, "o1")

	if err := h.PatchStatus(c); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if stub.status != "shipped" {
		t.Fatalf("status not forwarded: %q", stub.status)
	}
}

func TestOrderHandler_Update_MapsFields(t *testing.T) {
	stub := &stubOrderService{order: &domain.Order{ID: "o1"}}
	h := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/orders/o1", `{"status":"Delivering","totalAmount":12,"items":[{"productName":"Tea","quantity":1,"price":2}]}`)
	withID(c, "o1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	in := stub.updated
	if in.Status == nil || *in.Status != "Delivering" {
		t.Fatalf("status not mapped: %+v", in.Status)
	}
	if in.TotalAmount == nil || *in.TotalAmount != 12 {
		t.Fatalf("total not mapped: %+v", in.TotalAmount)
	}
	if len(in.Items) != 1 || in.Note != nil || in.DeliveryAddress != nil {
		t.Fatalf("unexpected update: %+v", in)
	}
}

func TestOrderHandler_PropagatesServiceErrors(t *testing.T) {
	for _, want := range []error{domain.ErrOrderNotFound, domain.ErrInvalidStatus, domain.ErrOrderConflict} {
		h := NewOrderHandler(&stubOrderService{err: want})

		c, rec := newTestContext(http.MethodPost, "/orders/o1/cancel", "")
		withID(c, "o1")
		if err := h.Cancel(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("nothing should be written on error")
		}
	}
}
