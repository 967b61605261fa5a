package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	contenterrors "beautybar/internal/content/errors"
	"beautybar/internal/content/repository"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

type ServiceCatalog interface {
	GetAll(ctx context.Context) ([]*model.Service, error)
	Create(ctx context.Context, service *model.Service) (*model.Service, error)
	// Update applies only the fields present in the request and returns
	// the updated document.
	Update(ctx context.Context, id string, update *model.ServiceUpdate) (*model.Service, error)
	Delete(ctx context.Context, id string) error
}

type serviceCatalog struct {
	repo     repository.ServiceRepository
	validate *validator.Validate
}

func NewServiceCatalog(repo repository.ServiceRepository) ServiceCatalog {
	return &serviceCatalog{
		repo:     repo,
		validate: validate.New(),
	}
}

func (s *serviceCatalog) GetAll(ctx context.Context) ([]*model.Service, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve services", err)
	}
	return services, nil
}

func (s *serviceCatalog) Create(ctx context.Context, service *model.Service) (*model.Service, error) {
	if err := validate.Struct(s.validate, service); err != nil {
		return nil, err
	}

	service.ID = uuid.NewString()
	service.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Create(ctx, service); err != nil {
		return nil, apperrors.Internal("Failed to create service", err)
	}
	return service, nil
}

func (s *serviceCatalog) Update(ctx context.Context, id string, update *model.ServiceUpdate) (*model.Service, error) {
	if update.Empty() {
		return nil, apperrors.InvalidInput("No data to update")
	}

	fields := bson.M{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Order != nil {
		fields["order"] = *update.Order
	}

	if err := s.repo.SetFields(ctx, id, fields); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Service", id)
		}
		return nil, apperrors.Internal("Failed to update service", err)
	}

	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve updated service", err)
	}
	return service, nil
}

func (s *serviceCatalog) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, contenterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Service", id)
		}
		return apperrors.Internal("Failed to delete service", err)
	}
	return nil
}
