package article

import (
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

type CreateCommentHandler struct{ Svc *artUC.Service }

// ServeHTTP adds a comment to an article.
// @Summary      Create comment
// @Description  Stores a comment under an existing article. The article is resolved before the body is read or validated, so an unknown article is always 404.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "Article ID"
// @Param        comment body CreateCommentRequest true "Comment"
// @Success      201 {object} CommentDTO
// @Failure      400 {object} respond.ErrorBody "body is not a JSON object"
// @Failure      404 {object} respond.ErrorBody "article not found"
// @Failure      422 {object} respond.ErrorBody "validation failed"
// @Failure      429 {object} respond.ErrorBody "too many requests"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/{id}/comments [post]
func (h CreateCommentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Body problems are reported only after the article is found.
	values, mismatched, bodyErr := decodeFields(r, "author_name", "content")
	req := CreateCommentRequest{AuthorName: values["author_name"], Content: values["content"]}

	c, err := h.Svc.CreateComment(r.Context(), artUC.CreateCommentInput{
		ArticleID:  id,
		AuthorName: req.AuthorName,
		Content:    req.Content,
		TypeErrors: mismatched,
		BodyErr:    bodyErr,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toCommentDTO(c))
}
