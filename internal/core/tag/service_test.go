// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/core/tag"
	"github.com/taibuivan/yomira-press/internal/platform/apperr"
)

// memoryRepository is an in-memory [tag.Repository].
type memoryRepository struct {
	byName  map[string]*tag.Tag
	nextID  int
	creates int
	calls   int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{byName: make(map[string]*tag.Tag), nextID: 1}
}

func (repo *memoryRepository) FindOrCreate(_ context.Context, name string) (*tag.Tag, error) {
	repo.calls++
	if existing, ok := repo.byName[name]; ok {
		return existing, nil
	}
	created := &tag.Tag{ID: repo.nextID, Name: name}
	repo.nextID++
	repo.creates++
	repo.byName[name] = created
	return created, nil
}

func (repo *memoryRepository) FindByName(_ context.Context, name string) (*tag.Tag, error) {
	if existing, ok := repo.byName[name]; ok {
		return existing, nil
	}
	return nil, apperr.NotFound("Tag")
}

func (repo *memoryRepository) List(_ context.Context) ([]*tag.Tag, error) {
	tags := make([]*tag.Tag, 0, len(repo.byName))
	for _, t := range repo.byName {
		tags = append(tags, t)
	}
	return tags, nil
}

func newTestService() (*tag.Service, *memoryRepository) {
	repo := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tag.NewService(repo, logger), repo
}

func names(tags []*tag.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Name)
	}
	return out
}

func TestService_Normalize(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_canonical_tags", func(t *testing.T) {
		service, repo := newTestService()

		tags, err := service.Normalize(ctx, "Python, python , -flask-, ai ")
		require.NoError(t, err)
		assert.Equal(t, []string{"python", "-flask-", "ai"}, names(tags))
		assert.Equal(t, 3, repo.creates)
	})

	t.Run("idempotent", func(t *testing.T) {
		service, repo := newTestService()

		first, err := service.Normalize(ctx, "Go, Rust")
		require.NoError(t, err)
		second, err := service.Normalize(ctx, "go,rust")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 2, repo.creates)
	})

	t.Run("empty_input_skips_store", func(t *testing.T) {
		service, repo := newTestService()

		tags, err := service.Normalize(ctx, "  , ")
		require.NoError(t, err)
		assert.Empty(t, tags)
		assert.Zero(t, repo.calls)
	})

	t.Run("short_name_is_rejected_before_writing", func(t *testing.T) {
		service, repo := newTestService()

		_, err := service.Normalize(ctx, "go, x")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		assert.Zero(t, repo.calls)
	})
}

func TestService_GetTag(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService()

	_, err := service.Normalize(ctx, "machine learning")
	require.NoError(t, err)

	found, err := service.GetTag(ctx, "Machine Learning")
	require.NoError(t, err)
	assert.Equal(t, "machine-learning", found.Name)

	_, err = service.GetTag(ctx, "missing")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
