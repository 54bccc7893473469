package article

import (
	"net/http"

	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article.
// @Summary      Create article
// @Description  Stores a new article. Title and content are required; title is at most 255 characters.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body CreateRequest true "Article"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorBody "body is not a JSON object"
// @Failure      422 {object} respond.ErrorBody "validation failed"
// @Failure      429 {object} respond.ErrorBody "too many requests"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	values, mismatched, err := decodeFields(r, "title", "content")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req := CreateRequest{Title: values["title"], Content: values["content"]}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Content:    req.Content,
		TypeErrors: mismatched,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
