// Package article implements the article and comment use cases: listing,
// fetching an article with its comments, and creating articles and comments.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article does not exist,
	// either for a detail read or as the parent of a new comment.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates an identifier that cannot name any article.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
