package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"pressroom/internal/domain/entity"
	"pressroom/internal/infra/db"
	"pressroom/internal/repository"
)

// CommentRepo implements the CommentRepository interface using SQLite.
type CommentRepo struct{ db db.Querier }

// NewCommentRepo creates a new SQLite-backed comment repository.
func NewCommentRepo(q db.Querier) repository.CommentRepository {
	return &CommentRepo{db: q}
}

// ListByArticle retrieves the comments of one article in chronological order.
func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_name, content, created_at, updated_at
FROM comments
WHERE article_id = ?
ORDER BY created_at ASC, id ASC
`

	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 16)
	for rows.Next() {
		var c entity.Comment
		err := rows.Scan(&c.ID, &c.ArticleID,
			&c.AuthorName, &c.Content,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByArticle: rows.Err: %w", err)
	}

	return comments, nil
}

// Create inserts the comment only when its parent article exists.
// The existence check is part of the INSERT statement itself.
func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_name, content, created_at, updated_at)
SELECT ?, ?, ?, ?, ?
WHERE EXISTS (SELECT 1 FROM articles WHERE id = ?)
`

	now := time.Now().UTC()
	res, err := repo.db.ExecContext(ctx, query,
		c.ArticleID, c.AuthorName, c.Content, now, now, c.ArticleID)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("Create: article %d: %w", c.ArticleID, entity.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Create: ExecContext: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Create: RowsAffected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("Create: article %d: %w", c.ArticleID, entity.ErrNotFound)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}

	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

// Count returns the number of stored comments.
func (repo *CommentRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
