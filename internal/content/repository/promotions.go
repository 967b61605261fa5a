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

const PromotionsCollection = "promotions"

type PromotionRepository interface {
	FindAll(ctx context.Context) ([]*model.Promotion, error)
	FindActive(ctx context.Context) ([]*model.Promotion, error)
	FindByID(ctx context.Context, id string) (*model.Promotion, error)
	Create(ctx context.Context, promotion *model.Promotion) error
	Update(ctx context.Context, id string, promotion *model.Promotion) error
	// DeactivateOthers clears the active flag on every promotion except
	// the one with excludeID. An empty excludeID deactivates all.
	DeactivateOthers(ctx context.Context, excludeID string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoPromotionRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoPromotionRepository(db *mongo.Database, cfg *config.Config) PromotionRepository {
	return &mongoPromotionRepository{
		collection:   db.Collection(PromotionsCollection),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (r *mongoPromotionRepository) FindAll(ctx context.Context) ([]*model.Promotion, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoPromotionRepository) FindActive(ctx context.Context) ([]*model.Promotion, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *mongoPromotionRepository) find(ctx context.Context, filter bson.M) ([]*model.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to find promotions: %w", err)
	}
	defer cursor.Close(ctx)

	promotions := []*model.Promotion{}
	if err = cursor.All(ctx, &promotions); err != nil {
		return nil, fmt.Errorf("failed to decode promotions: %w", err)
	}

	return promotions, nil
}

func (r *mongoPromotionRepository) FindByID(ctx context.Context, id string) (*model.Promotion, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	var promotion model.Promotion
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&promotion)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find promotion: %w", err)
	}

	return &promotion, nil
}

func (r *mongoPromotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, promotion); err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

func (r *mongoPromotionRepository) Update(ctx context.Context, id string, promotion *model.Promotion) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       promotion.Title,
		"description": promotion.Description,
		"discount":    promotion.Discount,
		"active":      promotion.Active,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update promotion: %w", err)
	}
	if result.MatchedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoPromotionRepository) DeactivateOthers(ctx context.Context, excludeID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	filter := bson.M{}
	if excludeID != "" {
		filter = bson.M{"id": bson.M{"$ne": excludeID}}
	}

	if _, err := r.collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"active": false}}); err != nil {
		return fmt.Errorf("failed to deactivate promotions: %w", err)
	}
	return nil
}

func (r *mongoPromotionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}
	if result.DeletedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoPromotionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count promotions: %w", err)
	}
	return count, nil
}
