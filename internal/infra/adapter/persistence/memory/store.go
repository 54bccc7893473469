// Package memory provides an in-process implementation of the repository
// interfaces. It is safe for concurrent use and is intended for tests and
// local development without a database.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// Store keeps articles and comments in memory behind a single lock.
type Store struct {
	mu            sync.RWMutex
	nextArticleID int64
	nextCommentID int64
	now           func() time.Time
	articles      map[int64]entity.Article
	comments      map[int64][]entity.Comment
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		nextArticleID: 1,
		nextCommentID: 1,
		now:           time.Now,
		articles:      make(map[int64]entity.Article),
		comments:      make(map[int64][]entity.Comment),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Articles returns the article repository view of the store.
func (s *Store) Articles() repository.ArticleRepository { return articleStore{s} }

// Comments returns the comment repository view of the store.
func (s *Store) Comments() repository.CommentRepository { return commentStore{s} }

// IDs are allocated per table, like a database sequence.
func nextIDLocked(seq *int64) int64 {
	id := *seq
	*seq++
	return id
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// ArticleRepository implementation -------------------------------------------

type articleStore struct{ *Store }

func (s articleStore) List(_ context.Context) ([]*entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Article, 0, len(s.articles))
	for _, a := range s.articles {
		a := a
		out = append(out, &a)
	}
	slices.SortFunc(out, func(a, b *entity.Article) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (s articleStore) Get(_ context.Context, id int64) (*entity.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s articleStore) Create(_ context.Context, article *entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	article.ID = nextIDLocked(&s.nextArticleID)
	article.CreatedAt = now
	article.UpdatedAt = now
	s.articles[article.ID] = *article
	return nil
}

func (s articleStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.articles)), nil
}

// CommentRepository implementation -------------------------------------------

type commentStore struct{ *Store }

func (s commentStore) ListByArticle(_ context.Context, articleID int64) ([]*entity.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.comments[articleID]
	out := make([]*entity.Comment, 0, len(stored))
	for _, c := range stored {
		c := c
		out = append(out, &c)
	}
	slices.SortStableFunc(out, func(a, b *entity.Comment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Create checks the parent and appends under the same write lock.
func (s commentStore) Create(_ context.Context, c *entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[c.ArticleID]; !ok {
		return fmt.Errorf("article %d: %w", c.ArticleID, entity.ErrNotFound)
	}

	now := s.timestamp()
	c.ID = nextIDLocked(&s.nextCommentID)
	c.CreatedAt = now
	c.UpdatedAt = now
	s.comments[c.ArticleID] = append(s.comments[c.ArticleID], *c)
	return nil
}

func (s commentStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, cs := range s.comments {
		n += int64(len(cs))
	}
	return n, nil
}
