// Package entity defines the core domain entities and validation logic for the application.
// It contains the published Article, the reader Comment attached to it, their
// validation rules and the domain-specific errors.
package entity

import "time"

// Article represents a published piece of content.
// ID and the timestamps are assigned by the storage layer on creation.
type Article struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment represents a reader response scoped to exactly one Article.
type Comment struct {
	ID         int64
	ArticleID  int64
	AuthorName string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ArticleDetail is an Article together with its comments in chronological order.
type ArticleDetail struct {
	Article  *Article
	Comments []*Comment
}
