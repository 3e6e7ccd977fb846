package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/coffeeshop/ordering-api/internal/core/domain"
	"github.com/coffeeshop/ordering-api/internal/core/ports"
)

type ComboService struct {
	repo   ports.ComboRepository
	logger zerolog.Logger
}

func NewComboService(repo ports.ComboRepository, logger zerolog.Logger) *ComboService {
	return &ComboService{repo: repo, logger: logger}
}

func (s *ComboService) ListCombos(ctx context.Context, filter ports.ComboFilter) ([]*domain.Combo, error) {
	return s.repo.List(ctx, filter)
}

func (s *ComboService) GetCombo(ctx context.Context, id string) (*domain.Combo, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ComboService) CreateCombo(ctx context.Context, in ports.CreateComboInput) (*domain.Combo, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Price < 0 || in.OriginalPrice < 0 {
		return nil, fmt.Errorf("%w: prices must not be negative", domain.ErrValidation)
	}
	if err := validateComboItems(in.Items); err != nil {
		return nil, err
	}
	if err := validateComboWindow(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	items := in.Items
	if items == nil {
		items = []domain.ComboItem{}
	}

	now := time.Now().UTC()
	combo := &domain.Combo{
		Name:          name,
		Description:   in.Description,
		Items:         items,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		IsActive:      active,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, combo); err != nil {
		return nil, err
	}

	s.logger.Info().Str("combo_id", combo.ID).Str("name", combo.Name).Msg("combo created")
	return combo, nil
}

func (s *ComboService) UpdateCombo(ctx context.Context, id string, upd ports.ComboUpdate) (*domain.Combo, error) {
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		upd.Name = &name
	}
	if (upd.Price != nil && *upd.Price < 0) || (upd.OriginalPrice != nil && *upd.OriginalPrice < 0) {
		return nil, fmt.Errorf("%w: prices must not be negative", domain.ErrValidation)
	}
	if upd.Items != nil {
		if err := validateComboItems(upd.Items); err != nil {
			return nil, err
		}
	}
	if err := validateComboWindow(upd.StartDate, upd.EndDate); err != nil {
		return nil, err
	}

	combo, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("combo_id", id).Msg("combo updated")
	return combo, nil
}

func (s *ComboService) DeleteCombo(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("combo_id", id).Msg("combo deleted")
	return nil
}

func validateComboItems(items []domain.ComboItem) error {
	for i, it := range items {
		if strings.TrimSpace(it.ProductName) == "" || it.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d] needs a productName and a positive quantity", domain.ErrValidation, i)
		}
	}
	return nil
}

func validateComboWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: endDate is before startDate", domain.ErrValidation)
	}
	return nil
}
