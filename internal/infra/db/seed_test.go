package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/domain/entity"
	"pressroom/internal/infra/adapter/persistence/memory"
	"pressroom/internal/infra/db"
	"pressroom/internal/repository"
)

func TestSeed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	seeded, err := db.Seed(ctx, store.Articles(), store.Comments())
	require.NoError(t, err)
	assert.True(t, seeded)

	articles, err := store.Articles().List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	titles := map[string]bool{}
	for _, a := range articles {
		titles[a.Title] = true
		comments, err := store.Comments().ListByArticle(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "Test User", comments[0].AuthorName)
		assert.Equal(t, "Great article! Very helpful.", comments[0].Content)
	}
	assert.True(t, titles["Getting Started with Go"])
	assert.True(t, titles["Designing JSON APIs"])
	assert.True(t, titles["Docker for Development"])
}

func TestSeed_SkipsWhenArticlesExist(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Articles().Create(ctx, &entity.Article{Title: "mine", Content: "x"}))

	seeded, err := db.Seed(ctx, store.Articles(), store.Comments())
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := store.Articles().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

type countErrRepo struct {
	repository.ArticleRepository
}

func (countErrRepo) Count(context.Context) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestSeed_CountError(t *testing.T) {
	store := memory.New()

	_, err := db.Seed(context.Background(), countErrRepo{store.Articles()}, store.Comments())
	assert.ErrorContains(t, err, "connection refused")
}
