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

const PricesCollection = "prices"

type PriceRepository interface {
	// FindAll filters by service type when one is given. The salon filter
	// also matches documents written before service_type existed.
	FindAll(ctx context.Context, serviceType string) ([]*model.PriceCategory, error)
	FindByID(ctx context.Context, id string) (*model.PriceCategory, error)
	Create(ctx context.Context, price *model.PriceCategory) error
	Update(ctx context.Context, id string, price *model.PriceCategory) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoPriceRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoPriceRepository(db *mongo.Database, cfg *config.Config) PriceRepository {
	return &mongoPriceRepository{
		collection:   db.Collection(PricesCollection),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (r *mongoPriceRepository) FindAll(ctx context.Context, serviceType string) ([]*model.PriceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	filter := bson.M{}
	switch serviceType {
	case "":
	case model.ServiceTypeSalon:
		filter = bson.M{"$or": []bson.M{
			{"service_type": model.ServiceTypeSalon},
			{"service_type": bson.M{"$exists": false}},
		}}
	default:
		filter = bson.M{"service_type": serviceType}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listLimit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find price categories: %w", err)
	}
	defer cursor.Close(ctx)

	prices := []*model.PriceCategory{}
	if err = cursor.All(ctx, &prices); err != nil {
		return nil, fmt.Errorf("failed to decode price categories: %w", err)
	}

	return prices, nil
}

func (r *mongoPriceRepository) FindByID(ctx context.Context, id string) (*model.PriceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	var price model.PriceCategory
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&price)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contenterrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find price category: %w", err)
	}

	return &price, nil
}

func (r *mongoPriceRepository) Create(ctx context.Context, price *model.PriceCategory) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, price); err != nil {
		return fmt.Errorf("failed to create price category: %w", err)
	}
	return nil
}

func (r *mongoPriceRepository) Update(ctx context.Context, id string, price *model.PriceCategory) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"category":     price.Category,
		"items":        price.Items,
		"order":        price.Order,
		"service_type": price.ServiceType,
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update price category: %w", err)
	}
	if result.MatchedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoPriceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete price category: %w", err)
	}
	if result.DeletedCount == 0 {
		return contenterrors.ErrNotFound
	}
	return nil
}

func (r *mongoPriceRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count price categories: %w", err)
	}
	return count, nil
}
