package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"beautybar/internal/content/repository"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type SeedService interface {
	// Seed inserts the default catalog into every collection that is
	// still empty. Collections with existing documents are left alone.
	Seed(ctx context.Context) (string, error)
}

type seedService struct {
	services     repository.ServiceRepository
	prices       repository.PriceRepository
	testimonials repository.TestimonialRepository
	promotions   repository.PromotionRepository
	gallery      repository.GalleryRepository
	log          *logger.Logger
}

func NewSeedService(
	services repository.ServiceRepository,
	prices repository.PriceRepository,
	testimonials repository.TestimonialRepository,
	promotions repository.PromotionRepository,
	gallery repository.GalleryRepository,
	log *logger.Logger,
) SeedService {
	return &seedService{
		services:     services,
		prices:       prices,
		testimonials: testimonials,
		promotions:   promotions,
		gallery:      gallery,
		log:          log,
	}
}

func (s *seedService) Seed(ctx context.Context) (string, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.seedServices(ctx, now); err != nil {
		return "", apperrors.Internal("Failed to seed services", err)
	}
	if err := s.seedPrices(ctx, now); err != nil {
		return "", apperrors.Internal("Failed to seed prices", err)
	}
	if err := s.seedTestimonials(ctx, now); err != nil {
		return "", apperrors.Internal("Failed to seed testimonials", err)
	}
	if err := s.seedPromotions(ctx, now); err != nil {
		return "", apperrors.Internal("Failed to seed promotions", err)
	}
	if err := s.seedGallery(ctx, now); err != nil {
		return "", apperrors.Internal("Failed to seed gallery", err)
	}

	s.log.Info("Seed complete")
	return "Data seeded successfully", nil
}

func (s *seedService) seedServices(ctx context.Context, now string) error {
	count, err := s.services.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	for _, svc := range defaultServices(now) {
		if err := s.services.Create(ctx, svc); err != nil {
			return err
		}
	}
	return nil
}

func (s *seedService) seedPrices(ctx context.Context, now string) error {
	count, err := s.prices.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	for _, price := range defaultPrices(now) {
		if err := s.prices.Create(ctx, price); err != nil {
			return err
		}
	}
	return nil
}

func (s *seedService) seedTestimonials(ctx context.Context, now string) error {
	count, err := s.testimonials.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	for _, testimonial := range defaultTestimonials(now) {
		if err := s.testimonials.Create(ctx, testimonial); err != nil {
			return err
		}
	}
	return nil
}

func (s *seedService) seedPromotions(ctx context.Context, now string) error {
	count, err := s.promotions.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	return s.promotions.Create(ctx, defaultPromotion(now))
}

func (s *seedService) seedGallery(ctx context.Context, now string) error {
	count, err := s.gallery.Count(ctx)
	if err != nil || count > 0 {
		return err
	}

	for _, image := range defaultGallery(now) {
		if err := s.gallery.Create(ctx, image); err != nil {
			return err
		}
	}
	return nil
}

func defaultServices(now string) []*model.Service {
	return []*model.Service{
		{ID: uuid.NewString(), Title: "Nails Extensions", Description: "Custom nail art and extensions that make a statement", Image: "https://images.unsplash.com/photo-1750598243589-1cc3770356b8?q=85&w=800&auto=format&fit=crop", Price: "From ₦15,000", Order: 0, CreatedAt: now},
		{ID: uuid.NewString(), Title: "Lashes Extensions", Description: "Volume and classic lashes for that perfect flutter", Image: "https://images.unsplash.com/photo-1672334115165-f82b6b5e8bee?q=85&w=800&auto=format&fit=crop", Price: "From ₦20,000", Order: 1, CreatedAt: now},
		{ID: uuid.NewString(), Title: "Brow Tinting & Lamination", Description: "Perfectly sculpted brows that frame your face", Image: "https://images.unsplash.com/photo-1755274556662-d37485f0677d?q=85&w=800&auto=format&fit=crop", Price: "From ₦12,000", Order: 2, CreatedAt: now},
		{ID: uuid.NewString(), Title: "Microblading", Description: "Semi-permanent brows with natural hair-stroke technique", Image: "https://images.unsplash.com/photo-1755223738688-be7501b937d2?q=85&w=800&auto=format&fit=crop", Price: "From ₦80,000", Order: 3, CreatedAt: now},
	}
}

func defaultPrices(now string) []*model.PriceCategory {
	return []*model.PriceCategory{
		{ID: uuid.NewString(), Category: "NAILS", ServiceType: model.ServiceTypeSalon, Items: []model.PriceItem{
			{Name: "Gel Extensions (Short)", Price: "₦15,000"},
			{Name: "Gel Extensions (Medium)", Price: "₦18,000"},
			{Name: "Gel Extensions (Long)", Price: "₦22,000"},
			{Name: "Acrylic Full Set", Price: "₦25,000"},
			{Name: "Nail Art (per nail)", Price: "₦500"},
			{Name: "Gel Polish Only", Price: "₦8,000"},
		}, Order: 0, CreatedAt: now},
		{ID: uuid.NewString(), Category: "LASHES", ServiceType: model.ServiceTypeSalon, Items: []model.PriceItem{
			{Name: "Classic Lashes", Price: "₦20,000"},
			{Name: "Volume Lashes", Price: "₦25,000"},
			{Name: "Mega Volume", Price: "₦30,000"},
			{Name: "Lash Lift & Tint", Price: "₦15,000"},
			{Name: "Lash Removal", Price: "₦3,000"},
		}, Order: 1, CreatedAt: now},
		{ID: uuid.NewString(), Category: "BROWS & BEAUTY", ServiceType: model.ServiceTypeSalon, Items: []model.PriceItem{
			{Name: "Brow Lamination", Price: "₦12,000"},
			{Name: "Brow Tint", Price: "₦5,000"},
			{Name: "Microblading", Price: "₦80,000"},
			{Name: "Microshading", Price: "₦85,000"},
			{Name: "Semi-Permanent Tattoo", Price: "From ₦30,000"},
		}, Order: 2, CreatedAt: now},
		// Home service prices include the transport fee.
		{ID: uuid.NewString(), Category: "NAILS", ServiceType: model.ServiceTypeHome, Items: []model.PriceItem{
			{Name: "Gel Extensions (Short)", Price: "₦22,000"},
			{Name: "Gel Extensions (Medium)", Price: "₦25,000"},
			{Name: "Gel Extensions (Long)", Price: "₦29,000"},
			{Name: "Acrylic Full Set", Price: "₦32,000"},
			{Name: "Nail Art (per nail)", Price: "₦500"},
			{Name: "Gel Polish Only", Price: "₦15,000"},
		}, Order: 0, CreatedAt: now},
		{ID: uuid.NewString(), Category: "LASHES", ServiceType: model.ServiceTypeHome, Items: []model.PriceItem{
			{Name: "Classic Lashes", Price: "₦27,000"},
			{Name: "Volume Lashes", Price: "₦32,000"},
			{Name: "Mega Volume", Price: "₦37,000"},
			{Name: "Lash Lift & Tint", Price: "₦22,000"},
			{Name: "Lash Removal", Price: "₦5,000"},
		}, Order: 1, CreatedAt: now},
		{ID: uuid.NewString(), Category: "BROWS & BEAUTY", ServiceType: model.ServiceTypeHome, Items: []model.PriceItem{
			{Name: "Brow Lamination", Price: "₦19,000"},
			{Name: "Brow Tint", Price: "₦10,000"},
			{Name: "Microblading", Price: "₦90,000"},
			{Name: "Microshading", Price: "₦95,000"},
			{Name: "Semi-Permanent Tattoo", Price: "From ₦40,000"},
		}, Order: 2, CreatedAt: now},
	}
}

func defaultTestimonials(now string) []*model.Testimonial {
	return []*model.Testimonial{
		{ID: uuid.NewString(), Name: "Amaka O.", Text: "Absolutely love my nails! The attention to detail is amazing. Will definitely be back!", Rating: 5, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Blessing A.", Text: "Best lash extensions in Lagos! They last so long and look so natural.", Rating: 5, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Chidinma E.", Text: "My brows have never looked better. The microblading is life-changing!", Rating: 5, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Damilola F.", Text: "Professional service, beautiful results. BeautyBar609 is my new go-to!", Rating: 5, CreatedAt: now},
		{ID: uuid.NewString(), Name: "Favour N.", Text: "The salon is so clean and the staff are so friendly. Highly recommend!", Rating: 5, CreatedAt: now},
	}
}

func defaultPromotion(now string) *model.Promotion {
	return &model.Promotion{
		ID:          uuid.NewString(),
		Title:       "Special Offer",
		Description: "Book a full set of nails and lashes together and get your total service discount. Valid for first-time clients!",
		Discount:    "15% OFF",
		Active:      true,
		CreatedAt:   now,
	}
}

func defaultGallery(now string) []*model.GalleryImage {
	return []*model.GalleryImage{
		{ID: uuid.NewString(), URL: "https://images.unsplash.com/photo-1594461287652-10b41090cf91?q=85&w=600&auto=format&fit=crop", Caption: "Nail Art", Order: 0, CreatedAt: now},
		{ID: uuid.NewString(), URL: "https://images.unsplash.com/photo-1516691475576-56cf13710ae9?q=85&w=600&auto=format&fit=crop", Caption: "Lash Extensions", Order: 1, CreatedAt: now},
		{ID: uuid.NewString(), URL: "https://images.unsplash.com/photo-1755274556345-949613163335?q=85&w=600&auto=format&fit=crop", Caption: "Brow Work", Order: 2, CreatedAt: now},
		{ID: uuid.NewString(), URL: "https://images.unsplash.com/photo-1750598243589-1cc3770356b8?q=85&w=600&auto=format&fit=crop", Caption: "Gel Nails", Order: 3, CreatedAt: now},
		{ID: uuid.NewString(), URL: "https://images.unsplash.com/photo-1740484674184-77a7629506a5?q=85&w=600&auto=format&fit=crop", Caption: "Beauty Work", Order: 4, CreatedAt: now},
		{ID: uuid.NewString(), URL: "https://images.unsplash.com/photo-1672334115165-f82b6b5e8bee?q=85&w=600&auto=format&fit=crop", Caption: "Lashes", Order: 5, CreatedAt: now},
	}
}
