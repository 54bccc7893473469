package db

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresSchema = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    id         BIGSERIAL PRIMARY KEY,
    title      VARCHAR(255) NOT NULL,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`
CREATE TABLE IF NOT EXISTS comments (
    id          BIGSERIAL PRIMARY KEY,
    article_id  BIGINT NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_name VARCHAR(255) NOT NULL,
    content     TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	// ORDER BY created_at DESC, id DESC on the list endpoint
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC, id DESC)`,
	// comments of one article in chronological order
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id_created_at ON comments(article_id, created_at, id)`,
}

var sqliteSchema = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      VARCHAR(255) NOT NULL,
    content    TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
	`
CREATE TABLE IF NOT EXISTS comments (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    article_id  INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
    author_name VARCHAR(255) NOT NULL,
    content     TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_article_id_created_at ON comments(article_id, created_at, id)`,
}

var dropStatements = []string{
	`DROP INDEX IF EXISTS idx_comments_article_id_created_at`,
	`DROP INDEX IF EXISTS idx_articles_created_at`,
	`DROP TABLE IF EXISTS comments`,
	`DROP TABLE IF EXISTS articles`,
}

// MigrateUp creates the articles and comments tables and their indexes.
// Every statement is idempotent, so it runs on each start.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case DriverPostgres:
		stmts = postgresSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("migrate: unsupported database driver %q", driver)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// MigrateDown drops the schema created by MigrateUp, comments first.
// All stored articles and comments are lost.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	}
	return nil
}
