package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/observability/tracing"
	"pressroom/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title   string
	Content string
	// TypeErrors lists fields whose submitted value was not a string.
	TypeErrors entity.ValidationErrors
}

// CreateCommentInput represents the input parameters for commenting on an article.
type CreateCommentInput struct {
	ArticleID  int64
	AuthorName string
	Content    string
	// TypeErrors lists fields whose submitted value was not a string.
	TypeErrors entity.ValidationErrors
	// BodyErr is set when the request body could not be read at all.
	// It is returned as is once the article is known to exist.
	BodyErr error
}

// Service provides the article use cases.
// Persistence is delegated to the two repositories.
type Service struct {
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
}

// List retrieves all articles, newest first.
func (s *Service) List(ctx context.Context) (articles []*entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.List")
	defer func() { endSpan(span, err) }()

	start := time.Now()
	articles, err = s.Articles.List(ctx)
	metrics.RecordDBQuery("list_articles", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	span.SetAttributes(attribute.Int("article.count", len(articles)))
	return articles, nil
}

// GetDetail retrieves one article and its comments in chronological order.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetDetail(ctx context.Context, id int64) (detail *entity.ArticleDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.GetDetail",
		trace.WithAttributes(attribute.Int64("article.id", id)))
	defer func() { endSpan(span, err) }()

	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	comments, err := s.Comments.ListByArticle(ctx, id)
	metrics.RecordDBQuery("list_comments", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}

	return &entity.ArticleDetail{Article: art, Comments: comments}, nil
}

// Create validates the input and stores a new article.
// Surrounding whitespace is removed from every field before validation.
// Returns entity.ValidationErrors if any field is invalid; nothing is stored then.
func (s *Service) Create(ctx context.Context, in CreateInput) (art *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.Create")
	defer func() { endSpan(span, err) }()

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if err := entity.ValidateArticle(title, content, in.TypeErrors...); err != nil {
		metrics.RecordWriteRejected("article", metrics.ReasonValidation)
		return nil, err
	}

	art = &entity.Article{Title: title, Content: content}

	start := time.Now()
	err = s.Articles.Create(ctx, art)
	metrics.RecordDBQuery("insert_article", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordArticleCreated()
	span.SetAttributes(attribute.Int64("article.id", art.ID))
	return art, nil
}

// CreateComment stores a comment under an existing article.
// The parent is resolved first, so a missing article is reported as
// ErrArticleNotFound whatever the comment body contains, even an unreadable
// one; only then are BodyErr and the fields (entity.ValidationErrors)
// reported. Nothing is stored on failure.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (c *entity.Comment, err error) {
	ctx, span := tracing.StartSpan(ctx, "article.CreateComment",
		trace.WithAttributes(attribute.Int64("article.id", in.ArticleID)))
	defer func() { endSpan(span, err) }()

	if in.ArticleID <= 0 {
		metrics.RecordWriteRejected("comment", metrics.ReasonNotFound)
		return nil, ErrInvalidArticleID
	}

	if _, err := s.get(ctx, in.ArticleID); err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			metrics.RecordWriteRejected("comment", metrics.ReasonNotFound)
		}
		return nil, err
	}

	if in.BodyErr != nil {
		metrics.RecordWriteRejected("comment", metrics.ReasonValidation)
		return nil, in.BodyErr
	}

	author := strings.TrimSpace(in.AuthorName)
	content := strings.TrimSpace(in.Content)
	if err := entity.ValidateComment(author, content, in.TypeErrors...); err != nil {
		metrics.RecordWriteRejected("comment", metrics.ReasonValidation)
		return nil, err
	}

	c = &entity.Comment{ArticleID: in.ArticleID, AuthorName: author, Content: content}

	start := time.Now()
	err = s.Comments.Create(ctx, c)
	metrics.RecordDBQuery("insert_comment", time.Since(start))
	if errors.Is(err, entity.ErrNotFound) {
		metrics.RecordWriteRejected("comment", metrics.ReasonNotFound)
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.RecordCommentCreated()
	span.SetAttributes(attribute.Int64("comment.id", c.ID))
	return c, nil
}

func (s *Service) get(ctx context.Context, id int64) (*entity.Article, error) {
	start := time.Now()
	art, err := s.Articles.Get(ctx, id)
	metrics.RecordDBQuery("get_article", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// endSpan ends span, marking it failed only for unexpected errors.
// Not-found and validation outcomes are normal client errors.
func endSpan(span trace.Span, err error) {
	if err != nil &&
		!errors.Is(err, ErrArticleNotFound) &&
		!errors.Is(err, ErrInvalidArticleID) &&
		!errors.Is(err, entity.ErrValidationFailed) {
		tracing.RecordError(span, err)
	}
	span.End()
}
