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

const GalleryCollection = "gallery"

type GalleryRepository interface {
	FindAll(ctx context.Context) ([]*model.GalleryImage, error)
	FindByID(ctx context.Context, id string) (*model.GalleryImage, error)
	Create(ctx context.Context, image *model.GalleryImage) error
	Update(ctx context.Context, id string, image *model.GalleryImage) error
	Delete(ctx context.Context, id string) error
	// MaxOrder returns the highest order value in the collection, or -1
	// when the collection is empty.
	MaxOrder(ctx context.Context) (int, error)
	Count(ctx context.Context) (int64, error)
}

type mongoGalleryRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoGalleryRepository(db *mongo.Database, cfg *config.Config) GalleryRepository {
	return &mongoGalleryRepository{
		collection:   db.Collection(GalleryCollection),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (r *mongoGalleryRepository) FindAll(ctx context.Context) ([]*model.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listLimit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	images := []*model.GalleryImage{}
	if err = cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode gallery images: %w", err)
	}

	return images, nil
}

func (r *mongoGalleryRepository) FindByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	var image model.GalleryImage
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find gallery image: %w", err)
	}

	return &image, nil
}

func (r *mongoGalleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, image); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *mongoGalleryRepository) Update(ctx context.Context, id string, image *model.GalleryImage) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"url":     image.URL,
		"caption": image.Caption,
		"order":   image.Order,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update gallery image: %w", err)
	}
	if result.MatchedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoGalleryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if result.DeletedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoGalleryRepository) MaxOrder(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})

	var image model.GalleryImage
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&image)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return -1, nil
		}
		return 0, fmt.Errorf("failed to find max gallery order: %w", err)
	}

	return image.Order, nil
}

func (r *mongoGalleryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count gallery images: %w", err)
	}
	return count, nil
}
