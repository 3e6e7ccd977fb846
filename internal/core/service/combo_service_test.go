package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type stubComboRepo struct {
	combos map[string]*domain.Combo
	seq    int
}

func newStubComboRepo() *stubComboRepo {
	return &stubComboRepo{combos: make(map[string]*domain.Combo)}
}

func (r *stubComboRepo) Create(_ context.Context, c *domain.Combo) error {
	r.seq++
	c.ID = fmt.Sprintf("combo_%d", r.seq)
	clone := *c
	r.combos[c.ID] = &clone
	return nil
}

func (r *stubComboRepo) FindByID(_ context.Context, id string) (*domain.Combo, error) {
	c, ok := r.combos[id]
	if !ok {
		return nil, domain.ErrComboNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubComboRepo) List(_ context.Context, filter ports.ComboFilter) ([]*domain.Combo, error) {
	var out []*domain.Combo
	for _, c := range r.combos {
		if filter.Active == nil || c.IsActive == *filter.Active {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubComboRepo) Update(_ context.Context, id string, upd ports.ComboUpdate) (*domain.Combo, error) {
	c, ok := r.combos[id]
	if !ok {
		return nil, domain.ErrComboNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Price != nil {
		c.Price = *upd.Price
	}
	if upd.IsActive != nil {
		c.IsActive = *upd.IsActive
	}
	clone := *c
	return &clone, nil
}

func (r *stubComboRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.combos[id]; !ok {
		return domain.ErrComboNotFound
	}
	delete(r.combos, id)
	return nil
}

func TestComboService_CreateCombo_DefaultsActive(t *testing.T) {
	svc := NewComboService(newStubComboRepo(), zerolog.Nop())

	c, err := svc.CreateCombo(context.Background(), ports.CreateComboInput{
		Name:  "Breakfast",
		Price: 60000,
		Items: []domain.ComboItem{{ProductName: "Latte", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateCombo returned error: %v", err)
	}
	if !c.IsActive || c.ID == "" {
		t.Fatalf("expected active combo with id, got %+v", c)
	}
}

func TestComboService_CreateCombo_Validation(t *testing.T) {
	svc := NewComboService(newStubComboRepo(), zerolog.Nop())
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	cases := []ports.CreateComboInput{
		{Name: " ", Price: 1},
		{Name: "x", Price: -1},
		{Name: "x", Price: 1, Items: []domain.ComboItem{{ProductName: "Latte", Quantity: 0}}},
		{Name: "x", Price: 1, StartDate: &start, EndDate: &end},
	}
	for i, in := range cases {
		if _, err := svc.CreateCombo(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestComboService_UpdateAndDelete(t *testing.T) {
	repo := newStubComboRepo()
	svc := NewComboService(repo, zerolog.Nop())
	c, _ := svc.CreateCombo(context.Background(), ports.CreateComboInput{Name: "Lunch", Price: 80000})

	off := false
	price := 75000.0
	updated, err := svc.UpdateCombo(context.Background(), c.ID, ports.ComboUpdate{IsActive: &off, Price: &price})
	if err != nil {
		t.Fatalf("UpdateCombo returned error: %v", err)
	}
	if updated.IsActive || updated.Price != 75000 || updated.Name != "Lunch" {
		t.Fatalf("unexpected merge result: %+v", updated)
	}

	active := true
	list, _ := svc.ListCombos(context.Background(), ports.ComboFilter{Active: &active})
	if len(list) != 0 {
		t.Fatalf("expected no active combos, got %d", len(list))
	}

	if err := svc.DeleteCombo(context.Background(), c.ID); err != nil {
		t.Fatalf("DeleteCombo returned error: %v", err)
	}
	if _, err := svc.GetCombo(context.Background(), c.ID); !errors.Is(err, domain.ErrComboNotFound) {
		t.Fatalf("expected ErrComboNotFound after delete, got %v", err)
	}
	if err := svc.DeleteCombo(context.Background(), c.ID); !errors.Is(err, domain.ErrComboNotFound) {
		t.Fatalf("expected ErrComboNotFound, got %v", err)
	}
}
