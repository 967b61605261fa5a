package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	autherrors "beautybar/internal/auth/errors"
	"beautybar/pkg/config"
	"beautybar/pkg/model"
)

const PasswordResetsCollection = "password_resets"

type PasswordResetRepository interface {
	Create(ctx context.Context, reset *model.PasswordReset) error
	// FindUnused returns the reset document for token only while its used
	// flag is still false.
	FindUnused(ctx context.Context, token string) (*model.PasswordReset, error)
	MarkUsed(ctx context.Context, token string) error
}

type mongoPasswordResetRepository struct {
	collection   *mongo.Collection
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoPasswordResetRepository(db *mongo.Database, cfg *config.Config) PasswordResetRepository {
	return &mongoPasswordResetRepository{
		collection:   db.Collection(PasswordResetsCollection),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
	}
}

func (r *mongoPasswordResetRepository) Create(ctx context.Context, reset *model.PasswordReset) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, reset); err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}
	return nil
}

func (r *mongoPasswordResetRepository) FindUnused(ctx context.Context, token string) (*model.PasswordReset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout)
	defer cancel()

	var reset model.PasswordReset
	err := r.collection.FindOne(ctx, bson.M{"token": token, "used": false}).Decode(&reset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, autherrors.ErrResetTokenNotFound
		}
		return nil, fmt.Errorf("failed to find password reset: %w", err)
	}

	return &reset, nil
}

func (r *mongoPasswordResetRepository) MarkUsed(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"token": token},
		bson.M{"$set": bson.M{"used": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark password reset used: %w", err)
	}
	if result.MatchedCount == 0 {
		return autherrors.ErrResetTokenNotFound
	}
	return nil
}
