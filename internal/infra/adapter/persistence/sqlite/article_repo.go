// Package sqlite provides SQLite implementations of repository interfaces.
// It is used for single-node deployments and local development.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/infra/db"
	"pressroom/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using SQLite.
type ArticleRepo struct{ db db.Querier }

// NewArticleRepo creates a new SQLite-backed article repository.
func NewArticleRepo(q db.Querier) repository.ArticleRepository {
	return &ArticleRepo{db: q}
}

// List retrieves all articles, newest first.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM articles
ORDER BY created_at DESC, id DESC
`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 32)
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(&article.ID,
			&article.Title, &article.Content,
			&article.CreatedAt, &article.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return articles, nil
}

// Get retrieves an article by ID. Returns (nil, nil) if it does not exist.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, content, created_at, updated_at
FROM articles
WHERE id = ?
LIMIT 1
`

	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&article.ID,
		&article.Title, &article.Content,
		&article.CreatedAt, &article.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &article, nil
}

// Create inserts the article. SQLite has no sub-second CURRENT_TIMESTAMP, so the
// timestamps are taken here and the ID comes from AUTOINCREMENT.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles (title, content, created_at, updated_at)
VALUES (?, ?, ?, ?)
`

	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query, article.Title, article.Content, now, now)
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}

	article.ID = id
	article.CreatedAt = now
	article.UpdatedAt = now
	return nil
}

// Count returns the number of stored articles.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
