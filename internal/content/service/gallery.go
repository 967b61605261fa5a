package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	contenterrors "beautybar/internal/content/errors"
	"beautybar/internal/content/repository"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

type GalleryService interface {
	GetAll(ctx context.Context) ([]*model.GalleryImage, error)
	Create(ctx context.Context, image *model.GalleryImage) (*model.GalleryImage, error)
	// Upload stores the raw image bytes as a base64 data URL and appends
	// it to the end of the gallery order.
	Upload(ctx context.Context, filename, contentType string, data []byte) (*model.GalleryImage, error)
	Update(ctx context.Context, id string, image *model.GalleryImage) (*model.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type galleryService struct {
	repo     repository.GalleryRepository
	validate *validator.Validate
}

func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryService{
		repo:     repo,
		validate: validate.New(),
	}
}

func (s *galleryService) GetAll(ctx context.Context) ([]*model.GalleryImage, error) {
	images, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve gallery images", err)
	}
	return images, nil
}

func (s *galleryService) Create(ctx context.Context, image *model.GalleryImage) (*model.GalleryImage, error) {
	if err := validate.Struct(s.validate, image); err != nil {
		return nil, err
	}

	image.ID = uuid.NewString()
	image.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, apperrors.Internal("Failed to create gallery image", err)
	}
	return image, nil
}

func (s *galleryService) Upload(ctx context.Context, filename, contentType string, data []byte) (*model.GalleryImage, error) {
	if len(data) == 0 {
		return nil, apperrors.InvalidInput("Empty file upload")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	maxOrder, err := s.repo.MaxOrder(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to determine gallery order", err)
	}

	image := &model.GalleryImage{
		ID:        uuid.NewString(),
		URL:       fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
		Caption:   filename,
		Order:     maxOrder + 1,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Create(ctx, image); err != nil {
		return nil, apperrors.Internal("Failed to store uploaded image", err)
	}
	return image, nil
}

func (s *galleryService) Update(ctx context.Context, id string, image *model.GalleryImage) (*model.GalleryImage, error) {
	if err := validate.Struct(s.validate, image); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, image); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Gallery image", id)
		}
		return nil, apperrors.Internal("Failed to update gallery image", err)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve updated gallery image", err)
	}
	return updated, nil
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Gallery image", id)
		}
		return apperrors.Internal("Failed to delete gallery image", err)
	}
	return nil
}
