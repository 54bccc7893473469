// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/infra/db"
	"pressroom/internal/repository"
)

type ArticleRepo struct {
	db db.Querier
}

func NewArticleRepo(q db.Querier) repository.ArticleRepository {
	return &ArticleRepo{db: q}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM articles
ORDER BY created_at DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content,
			&article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Content,
			&article.CreatedAt, &article.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

// Create inserts the article and fills in the server-assigned ID and timestamps.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, content)
VALUES ($1, $2)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, article.Title, article.Content).
		Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
