package article

import (
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article with its comments.
// @Summary      Get article
// @Description  Returns the article and its comments in chronological order
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DetailDTO
// @Failure      404 {object} respond.ErrorBody "article not found"
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	detail, err := h.Svc.GetDetail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDetailDTO(detail))
}
