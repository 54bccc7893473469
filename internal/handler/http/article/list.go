package article

import (
	"net/http"

	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles.
// @Summary      List articles
// @Description  Returns every article, newest first. Comments are only included in the detail view.
// @Tags         articles
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} respond.ErrorBody
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
