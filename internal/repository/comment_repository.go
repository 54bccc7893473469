package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

// CommentRepository persists comments scoped to a parent article.
type CommentRepository interface {
	// ListByArticle returns the comments of one article in chronological order
	// (created_at ASC, id ASC). An article without comments yields an empty slice.
	ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error)
	// Create stores the comment only if comment.ArticleID references an existing
	// article; the check and the insert are atomic. Returns entity.ErrNotFound
	// when the parent article does not exist.
	Create(ctx context.Context, comment *entity.Comment) error
	Count(ctx context.Context) (int64, error)
}
