package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautybar/pkg/logger"
	"beautybar/pkg/model"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT, Output: io.Discard})
}

func passThrough(h httprouter.Handle) httprouter.Handle {
	return h
}

type stubPromotionService struct {
	promotions []*model.Promotion
	active     *model.Promotion
}

func (s *stubPromotionService) GetAll(_ context.Context) ([]*model.Promotion, error) {
	return s.promotions, nil
}

func (s *stubPromotionService) GetActive(_ context.Context) (*model.Promotion, error) {
	return s.active, nil
}

func (s *stubPromotionService) Create(_ context.Context, upsert *model.PromotionUpsert) (*model.Promotion, error) {
	return &model.Promotion{ID: "created", Title: upsert.Title, Active: upsert.IsActive()}, nil
}

func (s *stubPromotionService) Update(_ context.Context, id string, upsert *model.PromotionUpsert) (*model.Promotion, error) {
	return &model.Promotion{ID: id, Title: upsert.Title, Active: upsert.IsActive()}, nil
}

func (s *stubPromotionService) Delete(_ context.Context, _ string) error {
	return nil
}

func TestGetActivePromotionEndpoint(t *testing.T) {
	t.Run("writes the running promotion as a single object", func(t *testing.T) {
		svc := &stubPromotionService{active: &model.Promotion{
			ID:          "p1",
			Title:       "Special Offer",
			Description: "First visit",
			Discount:    "15% OFF",
			Active:      true,
		}}

		router := httprouter.New()
		NewPromotionHandler(svc, newTestLogger()).RegisterRoutes(router, passThrough)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/promotions/active", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var promotion model.Promotion
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &promotion))
		assert.Equal(t, "p1", promotion.ID)
	})

	t.Run("writes null when no promotion is active", func(t *testing.T) {
		router := httprouter.New()
		NewPromotionHandler(&stubPromotionService{}, newTestLogger()).RegisterRoutes(router, passThrough)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/promotions/active", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})
}
