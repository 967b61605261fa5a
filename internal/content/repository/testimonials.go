package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	contenterrors "beautybar/internal/content/errors"
	"beautybar/pkg/config"
	"beautybar/pkg/model"
)

const TestimonialsCollection = "testimonials"

type TestimonialRepository interface {
	FindAll(ctx context.Context) ([]*model.Testimonial, error)
	FindByID(ctx context.Context, id string) (*model.Testimonial, error)
	Create(ctx context.Context, testimonial *model.Testimonial) error
	Update(ctx context.Context, id string, testimonial *model.Testimonial) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoTestimonialRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoTestimonialRepository(db *mongo.Database, cfg *config.Config) TestimonialRepository {
	return &mongoTestimonialRepository{
		collection:   db.Collection(TestimonialsCollection),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (r *mongoTestimonialRepository) FindAll(ctx context.Context) ([]*model.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to find testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	testimonials := []*model.Testimonial{}
	if err = cursor.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}

	return testimonials, nil
}

func (r *mongoTestimonialRepository) FindByID(ctx context.Context, id string) (*model.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	var testimonial model.Testimonial
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&testimonial)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find testimonial: %w", err)
	}

	return &testimonial, nil
}

func (r *mongoTestimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, testimonial); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *mongoTestimonialRepository) Update(ctx context.Context, id string, testimonial *model.Testimonial) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":   testimonial.Name,
		"text":   testimonial.Text,
		"rating": testimonial.Rating,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	if result.MatchedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoTestimonialRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	if result.DeletedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoTestimonialRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count testimonials: %w", err)
	}
	return count, nil
}
