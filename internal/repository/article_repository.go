package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

// ArticleRepository persists articles. Implementations assign the ID and
// both timestamps on Create and never reuse identifiers.
type ArticleRepository interface {
	// List returns every article, newest first (created_at DESC, id DESC).
	List(ctx context.Context) ([]*entity.Article, error)
	// Get returns (nil, nil) if the article does not exist.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	// Count returns the total number of stored articles.
	Count(ctx context.Context) (int64, error)
}
