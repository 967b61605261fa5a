package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	contenterrors "beautybar/internal/content/errors"
	"beautybar/internal/content/repository"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

type PriceService interface {
	GetAll(ctx context.Context, serviceType string) ([]*model.PriceCategory, error)
	Create(ctx context.Context, price *model.PriceCategory) (*model.PriceCategory, error)
	Update(ctx context.Context, id string, price *model.PriceCategory) (*model.PriceCategory, error)
	Delete(ctx context.Context, id string) error
}

type priceService struct {
	repo     repository.PriceRepository
	validate *validator.Validate
}

func NewPriceService(repo repository.PriceRepository) PriceService {
	return &priceService{
		repo:     repo,
		validate: validate.New(),
	}
}

func (s *priceService) GetAll(ctx context.Context, serviceType string) ([]*model.PriceCategory, error) {
	prices, err := s.repo.FindAll(ctx, serviceType)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve price categories", err)
	}
	return prices, nil
}

func (s *priceService) Create(ctx context.Context, price *model.PriceCategory) (*model.PriceCategory, error) {
	if err := validate.Struct(s.validate, price); err != nil {
		return nil, err
	}

	if price.ServiceType == "" {
		price.ServiceType = model.ServiceTypeSalon
	}
	price.ID = uuid.NewString()
	price.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, price); err != nil {
		return nil, apperrors.Internal("Failed to create price category", err)
	}
	return price, nil
}

func (s *priceService) Update(ctx context.Context, id string, price *model.PriceCategory) (*model.PriceCategory, error) {
	if err := validate.Struct(s.validate, price); err != nil {
		return nil, err
	}

	if price.ServiceType == "" {
		price.ServiceType = model.ServiceTypeSalon
	}

	if err := s.repo.Update(ctx, id, price); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Price category", id)
		}
		return nil, apperrors.Internal("Failed to update price category", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve updated price category", err)
	}
	return updated, nil
}

func (s *priceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Price category", id)
		}
		return apperrors.Internal("Failed to delete price category", err)
	}
	return nil
}
