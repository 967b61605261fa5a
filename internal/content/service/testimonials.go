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

type TestimonialService interface {
	GetAll(ctx context.Context) ([]*model.Testimonial, error)
	Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	Update(ctx context.Context, id string, testimonial *model.Testimonial) (*model.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialService struct {
	repo     repository.TestimonialRepository
	validate *validator.Validate
}

func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{
		repo:     repo,
		validate: validate.New(),
	}
}

func (s *testimonialService) GetAll(ctx context.Context) ([]*model.Testimonial, error) {
	testimonials, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve testimonials", err)
	}
	return testimonials, nil
}

func (s *testimonialService) Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	applyRatingDefault(testimonial)
	if err := validate.Struct(s.validate, testimonial); err != nil {
		return nil, err
	}

	testimonial.ID = uuid.NewString()
	testimonial.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, testimonial); err != nil {
		return nil, apperrors.Internal("Failed to create testimonial", err)
	}
	return testimonial, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, testimonial *model.Testimonial) (*model.Testimonial, error) {
	applyRatingDefault(testimonial)
	if err := validate.Struct(s.validate, testimonial); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, testimonial); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Testimonial", id)
		}
		return nil, apperrors.Internal("Failed to update testimonial", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve updated testimonial", err)
	}
	return updated, nil
}

// applyRatingDefault fills an omitted rating with five stars, the same
// default the public site assumes.
func applyRatingDefault(testimonial *model.Testimonial) {
	if testimonial.Rating == 0 {
		testimonial.Rating = 5
	}
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Testimonial", id)
		}
		return apperrors.Internal("Failed to delete testimonial", err)
	}
	return nil
}
