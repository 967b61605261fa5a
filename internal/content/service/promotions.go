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
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

type PromotionService interface {
	GetAll(ctx context.Context) ([]*model.Promotion, error)
	// GetActive returns the single active promotion, or nil when none is
	// running.
	GetActive(ctx context.Context) (*model.Promotion, error)
	// Create and Update keep at most one promotion active: writing an
	// active promotion first deactivates every other one. An omitted
	// active flag defaults to true.
	Create(ctx context.Context, upsert *model.PromotionUpsert) (*model.Promotion, error)
	Update(ctx context.Context, id string, upsert *model.PromotionUpsert) (*model.Promotion, error)
	Delete(ctx context.Context, id string) error
}

type promotionService struct {
	repo     repository.PromotionRepository
	validate *validator.Validate
	log      *logger.Logger
}

func NewPromotionService(repo repository.PromotionRepository, log *logger.Logger) PromotionService {
	return &promotionService{
		repo:     repo,
		validate: validate.New(),
		log:      log,
	}
}

func (s *promotionService) GetAll(ctx context.Context) ([]*model.Promotion, error) {
	promotions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve promotions", err)
	}
	return promotions, nil
}

func (s *promotionService) GetActive(ctx context.Context) (*model.Promotion, error) {
	promotions, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve active promotion", err)
	}
	if len(promotions) == 0 {
		return nil, nil
	}
	return promotions[0], nil
}

func (s *promotionService) Create(ctx context.Context, upsert *model.PromotionUpsert) (*model.Promotion, error) {
	if err := validate.Struct(s.validate, upsert); err != nil {
		return nil, err
	}

	// Deactivate before insert. A crash between the two writes leaves no
	// active promotion, never two.
	if upsert.IsActive() {
		if err := s.repo.DeactivateOthers(ctx, ""); err != nil {
			return nil, apperrors.Internal("Failed to deactivate promotions", err)
		}
	}

	promotion := &model.Promotion{
		ID:          uuid.NewString(),
		Title:       upsert.Title,
		Description: upsert.Description,
		Discount:    upsert.Discount,
		Active:      upsert.IsActive(),
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, apperrors.Internal("Failed to create promotion", err)
	}

	s.log.Info("Promotion created", "promotion_id", promotion.ID, "active", promotion.Active)
	return promotion, nil
}

func (s *promotionService) Update(ctx context.Context, id string, upsert *model.PromotionUpsert) (*model.Promotion, error) {
	if err := validate.Struct(s.validate, upsert); err != nil {
		return nil, err
	}

	if upsert.IsActive() {
		if err := s.repo.DeactivateOthers(ctx, id); err != nil {
			return nil, apperrors.Internal("Failed to deactivate promotions", err)
		}
	}

	promotion := &model.Promotion{
		Title:       upsert.Title,
		Description: upsert.Description,
		Discount:    upsert.Discount,
		Active:      upsert.IsActive(),
	}

	if err := s.repo.Update(ctx, id, promotion); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Promotion", id)
		}
		return nil, apperrors.Internal("Failed to update promotion", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve updated promotion", err)
	}
	return updated, nil
}

func (s *promotionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Promotion", id)
		}
		return apperrors.Internal("Failed to delete promotion", err)
	}
	return nil
}
