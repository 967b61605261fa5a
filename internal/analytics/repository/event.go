package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"beautybar/pkg/config"
	"beautybar/pkg/model"
)

const EventsCollection = "analytics"

type EventRepository interface {
	Insert(ctx context.Context, event *model.AnalyticsEvent) error
	CountAll(ctx context.Context) (int64, error)
	// CountSince counts events with timestamp >= since. Timestamps are
	// RFC3339 strings, so the range comparison is lexicographic.
	CountSince(ctx context.Context, since string) (int64, error)
	CountBetween(ctx context.Context, from, to string) (int64, error)
	CountDistinctVisitors(ctx context.Context) (int64, error)
	TopSections(ctx context.Context, limit int) ([]model.SectionViews, error)
}

type mongoEventRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoEventRepository(db *mongo.Database, cfg *config.Config) EventRepository {
	return &mongoEventRepository{
		collection:   db.Collection(EventsCollection),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (r *mongoEventRepository) Insert(ctx context.Context, event *model.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	return nil
}

func (r *mongoEventRepository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *mongoEventRepository) CountSince(ctx context.Context, since string) (int64, error) {
	return r.count(ctx, bson.M{"timestamp": bson.M{"$gte": since}})
}

func (r *mongoEventRepository) CountBetween(ctx context.Context, from, to string) (int64, error) {
	return r.count(ctx, bson.M{"timestamp": bson.M{"$gte": from, "$lt": to}})
}

func (r *mongoEventRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count analytics events: %w", err)
	}
	return count, nil
}

func (r *mongoEventRepository) CountDistinctVisitors(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$visitor_id"}}},
		{{Key: "$count", Value: "total"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct visitors: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode visitor count: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *mongoEventRepository) TopSections(ctx context.Context, limit int) ([]model.SectionViews, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"section": bson.M{"$exists": true, "$ne": nil}}}},
		{{Key: "$group", Value: bson.M{"_id": "$section", "views": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "views", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate section views: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Section string `bson:"_id"`
		Views   int64  `bson:"views"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode section views: %w", err)
	}

	sections := make([]model.SectionViews, 0, len(results))
	for _, r := range results {
		sections = append(sections, model.SectionViews{Section: r.Section, Views: r.Views})
	}
	return sections, nil
}
