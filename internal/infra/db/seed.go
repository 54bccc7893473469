package db

import (
	"context"
	"fmt"
	"log/slog"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

type sampleArticle struct {
	Title   string
	Content string
}

var sampleArticles = []sampleArticle{
	{
		Title:   "Getting Started with Go",
		Content: "Go is a small language with a large standard library and fast builds...",
	},
	{
		Title:   "Designing JSON APIs",
		Content: "A predictable error shape and stable field names make an API easy to consume...",
	},
	{
		Title:   "Docker for Development",
		Content: "Docker containers allow you to package up an application with all of the parts it needs...",
	},
}

const (
	sampleCommentAuthor  = "Test User"
	sampleCommentContent = "Great article! Very helpful."
)

// Seed inserts the sample articles, one comment each, when no article exists yet.
// It reports whether anything was written.
func Seed(ctx context.Context, articles repository.ArticleRepository, comments repository.CommentRepository) (bool, error) {
	n, err := articles.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	if n > 0 {
		slog.Info("seed skipped, articles already present", slog.Int64("articles", n))
		return false, nil
	}

	for _, s := range sampleArticles {
		a := &entity.Article{Title: s.Title, Content: s.Content}
		if err := articles.Create(ctx, a); err != nil {
			return false, fmt.Errorf("seed article %q: %w", s.Title, err)
		}
		c := &entity.Comment{ArticleID: a.ID, AuthorName: sampleCommentAuthor, Content: sampleCommentContent}
		if err := comments.Create(ctx, c); err != nil {
			return false, fmt.Errorf("seed comment for article %d: %w", a.ID, err)
		}
	}

	slog.Info("seeded sample data", slog.Int("articles", len(sampleArticles)))
	return true, nil
}
