package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contenterrors "beautybar/internal/content/errors"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
)

type mockGalleryRepo struct {
	images []*model.GalleryImage
}

func (m *mockGalleryRepo) FindAll(_ context.Context) ([]*model.GalleryImage, error) {
	return m.images, nil
}

func (m *mockGalleryRepo) FindByID(_ context.Context, id string) (*model.GalleryImage, error) {
	for _, img := range m.images {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, contenterrors.ErrNotFound
}

func (m *mockGalleryRepo) Create(_ context.Context, image *model.GalleryImage) error {
	m.images = append(m.images, image)
	return nil
}

func (m *mockGalleryRepo) Update(_ context.Context, id string, image *model.GalleryImage) error {
	for _, img := range m.images {
		if img.ID == id {
			img.URL = image.URL
			img.Caption = image.Caption
			img.Order = image.Order
			return nil
		}
	}
	return contenterrors.ErrNotFound
}

func (m *mockGalleryRepo) Delete(_ context.Context, id string) error {
	for i, img := range m.images {
		if img.ID == id {
			m.images = append(m.images[:i], m.images[i+1:]...)
			return nil
		}
	}
	return contenterrors.ErrNotFound
}

func (m *mockGalleryRepo) MaxOrder(_ context.Context) (int, error) {
	max := -1
	for _, img := range m.images {
		if img.Order > max {
			max = img.Order
		}
	}
	return max, nil
}

func (m *mockGalleryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.images)), nil
}

func TestGalleryUpload(t *testing.T) {
	t.Run("stores the file as a data url at the end of the order", func(t *testing.T) {
		repo := &mockGalleryRepo{images: []*model.GalleryImage{
			{ID: "g1", URL: "https://example.com/a.jpg", Order: 0},
			{ID: "g2", URL: "https://example.com/b.jpg", Order: 4},
		}}
		svc := NewGalleryService(repo)

		payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
		image, err := svc.Upload(context.Background(), "nails.jpg", "image/jpeg", payload)

		require.NoError(t, err)
		wantURL := fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(payload))
		assert.Equal(t, wantURL, image.URL)
		assert.Equal(t, "nails.jpg", image.Caption)
		assert.Equal(t, 5, image.Order)
		assert.NotEmpty(t, image.ID)
		assert.Len(t, repo.images, 3)
	})

	t.Run("first upload starts at order zero", func(t *testing.T) {
		svc := NewGalleryService(&mockGalleryRepo{})

		image, err := svc.Upload(context.Background(), "first.png", "image/png", []byte{0x89, 0x50})

		require.NoError(t, err)
		assert.Equal(t, 0, image.Order)
	})

	t.Run("missing content type falls back to jpeg", func(t *testing.T) {
		svc := NewGalleryService(&mockGalleryRepo{})

		image, err := svc.Upload(context.Background(), "raw.bin", "", []byte{0x01})

		require.NoError(t, err)
		assert.Contains(t, image.URL, "data:image/jpeg;base64,")
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		svc := NewGalleryService(&mockGalleryRepo{})

		_, err := svc.Upload(context.Background(), "empty.jpg", "image/jpeg", nil)

		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidInput, apperrors.AsAppError(err).Code)
	})
}

func TestGalleryUpdate(t *testing.T) {
	t.Run("replaces url, caption and order", func(t *testing.T) {
		repo := &mockGalleryRepo{images: []*model.GalleryImage{
			{ID: "g1", URL: "https://example.com/a.jpg", Caption: "old", Order: 0},
		}}
		svc := NewGalleryService(repo)

		updated, err := svc.Update(context.Background(), "g1", &model.GalleryImage{
			URL:     "https://example.com/new.jpg",
			Caption: "new caption",
			Order:   3,
		})

		require.NoError(t, err)
		assert.Equal(t, "g1", updated.ID)
		assert.Equal(t, "https://example.com/new.jpg", updated.URL)
		assert.Equal(t, "new caption", updated.Caption)
		assert.Equal(t, 3, updated.Order)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		svc := NewGalleryService(&mockGalleryRepo{})

		_, err := svc.Update(context.Background(), "missing", &model.GalleryImage{
			URL: "https://example.com/new.jpg",
		})

		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
	})
}

func TestGalleryDelete(t *testing.T) {
	repo := &mockGalleryRepo{images: []*model.GalleryImage{
		{ID: "g1", URL: "https://example.com/a.jpg"},
	}}
	svc := NewGalleryService(repo)

	require.NoError(t, svc.Delete(context.Background(), "g1"))
	assert.Empty(t, repo.images)

	err := svc.Delete(context.Background(), "g1")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.AsAppError(err).Code)
}
