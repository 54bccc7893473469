package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"pressroom/internal/domain/entity"
	"pressroom/internal/infra/db"
	"pressroom/internal/repository"
)

// foreignKeyViolation is the SQLSTATE raised when comments.article_id has no parent row.
const foreignKeyViolation = "23503"

type CommentRepo struct {
	db db.Querier
}

func NewCommentRepo(q db.Querier) repository.CommentRepository {
	return &CommentRepo{db: q}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, content, created_at, updated_at
FROM comments
WHERE article_id = $1
ORDER BY created_at ASC, id ASC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Content,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByArticle: rows.Err: %w", err)
	}
	return comments, nil
}

// Create inserts the comment in a single statement that only produces a row
// when the parent article exists, so a missing parent never leaves a write behind.
func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_name, content)
SELECT $1::bigint, $2::text, $3::text
WHERE EXISTS (SELECT 1 FROM articles WHERE id = $1::bigint)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, c.ArticleID, c.AuthorName, c.Content).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) || isForeignKeyViolation(err) {
		return fmt.Errorf("Create: article %d: %w", c.ArticleID, entity.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
