package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contenterrors "beautybar/internal/content/errors"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

type mockPromotionRepo struct {
	promotions       []*model.Promotion
	deactivatedCalls []string
}

func (m *mockPromotionRepo) FindAll(_ context.Context) ([]*model.Promotion, error) {
	return m.promotions, nil
}

func (m *mockPromotionRepo) FindActive(_ context.Context) ([]*model.Promotion, error) {
	active := []*model.Promotion{}
	for _, p := range m.promotions {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

func (m *mockPromotionRepo) FindByID(_ context.Context, id string) (*model.Promotion, error) {
	for _, p := range m.promotions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, contenterrors.ErrNotFound
}

func (m *mockPromotionRepo) Create(_ context.Context, promotion *model.Promotion) error {
	m.promotions = append(m.promotions, promotion)
	return nil
}

func (m *mockPromotionRepo) Update(_ context.Context, id string, promotion *model.Promotion) error {
	for _, p := range m.promotions {
		if p.ID == id {
			p.Title = promotion.Title
			p.Description = promotion.Description
			p.Discount = promotion.Discount
			p.Active = promotion.Active
			return nil
		}
	}
	return contenterrors.ErrNotFound
}

func (m *mockPromotionRepo) DeactivateOthers(_ context.Context, excludeID string) error {
	m.deactivatedCalls = append(m.deactivatedCalls, excludeID)
	for _, p := range m.promotions {
		if p.ID != excludeID {
			p.Active = false
		}
	}
	return nil
}

func (m *mockPromotionRepo) Delete(_ context.Context, id string) error {
	for i, p := range m.promotions {
		if p.ID == id {
			m.promotions = append(m.promotions[:i], m.promotions[i+1:]...)
			return nil
		}
	}
	return contenterrors.ErrNotFound
}

func (m *mockPromotionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.promotions)), nil
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: io.Discard})
}

func boolPtr(b bool) *bool {
	return &b
}

func activePromotions(repo *mockPromotionRepo) []*model.Promotion {
	active, _ := repo.FindActive(context.Background())
	return active
}

func TestPromotionExclusivity(t *testing.T) {
	t.Run("creating an active promotion deactivates the rest", func(t *testing.T) {
		repo := &mockPromotionRepo{promotions: []*model.Promotion{
			{ID: "p1", Title: "Old Offer", Description: "old", Discount: "10% OFF", Active: true},
		}}
		svc := NewPromotionService(repo, quietLogger())

		created, err := svc.Create(context.Background(), &model.PromotionUpsert{
			Title:       "Special Offer",
			Description: "new",
			Discount:    "15% OFF",
			Active:      boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{""}, repo.deactivatedCalls)

		active := activePromotions(repo)
		require.Len(t, active, 1)
		assert.Equal(t, created.ID, active[0].ID)
	})

	t.Run("activating an existing promotion deactivates only the others", func(t *testing.T) {
		repo := &mockPromotionRepo{promotions: []*model.Promotion{
			{ID: "p1", Title: "A", Description: "a", Discount: "10% OFF", Active: true},
			{ID: "p2", Title: "B", Description: "b", Discount: "20% OFF", Active: false},
		}}
		svc := NewPromotionService(repo, quietLogger())

		updated, err := svc.Update(context.Background(), "p2", &model.PromotionUpsert{
			Title:       "B",
			Description: "b",
			Discount:    "20% OFF",
			Active:      boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"p2"}, repo.deactivatedCalls)
		assert.True(t, updated.Active)

		active := activePromotions(repo)
		require.Len(t, active, 1)
		assert.Equal(t, "p2", active[0].ID)
	})

	t.Run("inactive writes leave other promotions alone", func(t *testing.T) {
		repo := &mockPromotionRepo{promotions: []*model.Promotion{
			{ID: "p1", Title: "A", Description: "a", Discount: "10% OFF", Active: true},
		}}
		svc := NewPromotionService(repo, quietLogger())

		created, err := svc.Create(context.Background(), &model.PromotionUpsert{
			Title:       "Draft",
			Description: "d",
			Discount:    "5% OFF",
			Active:      boolPtr(false),
		})

		require.NoError(t, err)
		assert.Empty(t, repo.deactivatedCalls)
		assert.False(t, created.Active)

		active := activePromotions(repo)
		require.Len(t, active, 1)
		assert.Equal(t, "p1", active[0].ID)
	})

	t.Run("omitted active flag defaults to true", func(t *testing.T) {
		repo := &mockPromotionRepo{promotions: []*model.Promotion{
			{ID: "p1", Title: "A", Description: "a", Discount: "10% OFF", Active: true},
		}}
		svc := NewPromotionService(repo, quietLogger())

		created, err := svc.Create(context.Background(), &model.PromotionUpsert{
			Title:       "Special Offer",
			Description: "new",
			Discount:    "15% OFF",
		})

		require.NoError(t, err)
		assert.True(t, created.Active)
		assert.Equal(t, []string{""}, repo.deactivatedCalls)

		active := activePromotions(repo)
		require.Len(t, active, 1)
		assert.Equal(t, created.ID, active[0].ID)
	})
}

func TestGetActivePromotion(t *testing.T) {
	t.Run("returns the single running promotion", func(t *testing.T) {
		repo := &mockPromotionRepo{promotions: []*model.Promotion{
			{ID: "p1", Title: "A", Description: "a", Discount: "10% OFF", Active: false},
			{ID: "p2", Title: "B", Description: "b", Discount: "20% OFF", Active: true},
		}}
		svc := NewPromotionService(repo, quietLogger())

		promotion, err := svc.GetActive(context.Background())

		require.NoError(t, err)
		require.NotNil(t, promotion)
		assert.Equal(t, "p2", promotion.ID)
	})

	t.Run("returns nil when nothing is active", func(t *testing.T) {
		repo := &mockPromotionRepo{promotions: []*model.Promotion{
			{ID: "p1", Title: "A", Description: "a", Discount: "10% OFF", Active: false},
		}}
		svc := NewPromotionService(repo, quietLogger())

		promotion, err := svc.GetActive(context.Background())

		require.NoError(t, err)
		assert.Nil(t, promotion)
	})
}

func TestPromotionUpdateUnknownID(t *testing.T) {
	svc := NewPromotionService(&mockPromotionRepo{}, quietLogger())

	_, err := svc.Update(context.Background(), "missing", &model.PromotionUpsert{
		Title:       "A",
		Description: "a",
		Discount:    "10% OFF",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
}
