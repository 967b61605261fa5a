package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautybar/pkg/model"
)

type stubGalleryService struct {
	updatedID string
	updated   *model.GalleryImage
}

func (s *stubGalleryService) GetAll(_ context.Context) ([]*model.GalleryImage, error) {
	return nil, nil
}

func (s *stubGalleryService) Create(_ context.Context, image *model.GalleryImage) (*model.GalleryImage, error) {
	return image, nil
}

func (s *stubGalleryService) Upload(_ context.Context, filename, contentType string, _ []byte) (*model.GalleryImage, error) {
	return &model.GalleryImage{Caption: filename, URL: "data:" + contentType + ";base64,"}, nil
}

func (s *stubGalleryService) Update(_ context.Context, id string, image *model.GalleryImage) (*model.GalleryImage, error) {
	s.updatedID = id
	s.updated = image
	return &model.GalleryImage{ID: id, URL: image.URL, Caption: image.Caption, Order: image.Order}, nil
}

func (s *stubGalleryService) Delete(_ context.Context, _ string) error {
	return nil
}

func TestUpdateGalleryImageEndpoint(t *testing.T) {
	svc := &stubGalleryService{}
	router := httprouter.New()
	NewGalleryHandler(svc, newTestLogger()).RegisterRoutes(router, passThrough)

	body := strings.NewReader(`{"url":"https://example.com/new.jpg","caption":"new","order":2}`)
	req := httptest.NewRequest(http.MethodPut, "/api/gallery/g1", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "g1", svc.updatedID)

	var image model.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &image))
	assert.Equal(t, "g1", image.ID)
	assert.Equal(t, "https://example.com/new.jpg", image.URL)
	assert.Equal(t, "new", image.Caption)
	assert.Equal(t, 2, image.Order)
}
