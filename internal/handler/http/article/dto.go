// Package article provides HTTP handlers for article and comment endpoints.
// It includes handlers for listing and fetching articles and for creating
// articles and comments.
package article

import (
	"time"

	"pressroom/internal/domain/entity"
)

// TimeFormat renders timestamps in UTC with microsecond precision so they
// sort correctly as text.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        int64  `json:"id" example:"1"`
	Title     string `json:"title" example:"Hello"`
	Content   string `json:"content" example:"World"`
	CreatedAt string `json:"created_at" example:"2024-01-01T12:00:00.000000Z"`
	UpdatedAt string `json:"updated_at" example:"2024-01-01T12:00:00.000000Z"`
}

// DetailDTO is an article together with its comments, oldest first.
type DetailDTO struct {
	DTO
	Comments []CommentDTO `json:"comments"`
}

// CommentDTO represents the JSON structure for comment data transfer.
type CommentDTO struct {
	ID         int64  `json:"id" example:"1"`
	ArticleID  int64  `json:"article_id" example:"1"`
	AuthorName string `json:"author_name" example:"Alice"`
	Content    string `json:"content" example:"Nice!"`
	CreatedAt  string `json:"created_at" example:"2024-01-01T12:00:00.000000Z"`
	UpdatedAt  string `json:"updated_at" example:"2024-01-01T12:00:00.000000Z"`
}

// CreateRequest is the body of POST /articles.
type CreateRequest struct {
	Title   string `json:"title" example:"Hello"`
	Content string `json:"content" example:"World"`
}

// CreateCommentRequest is the body of POST /articles/{id}/comments.
type CreateCommentRequest struct {
	AuthorName string `json:"author_name" example:"Alice"`
	Content    string `json:"content" example:"Nice!"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func toCommentDTO(c *entity.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func toDetailDTO(d *entity.ArticleDetail) DetailDTO {
	comments := make([]CommentDTO, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, toCommentDTO(c))
	}
	return DetailDTO{DTO: toDTO(d.Article), Comments: comments}
}
