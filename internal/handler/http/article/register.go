package article

import (
	"net/http"

	"pressroom/internal/handler/http/pathutil"
	artUC "pressroom/internal/usecase/article"
)

// Register registers the article and comment handlers on mux, both at the
// root and under the /api prefix. writes wraps the POST handlers, typically
// with a rate limiter; nil leaves them unwrapped.
func Register(mux *http.ServeMux, svc *artUC.Service, writes func(http.Handler) http.Handler) {
	if writes == nil {
		writes = func(h http.Handler) http.Handler { return h }
	}

	for _, prefix := range []string{"", pathutil.APIPrefix} {
		mux.Handle("GET "+prefix+"/articles", ListHandler{svc})
		mux.Handle("GET "+prefix+"/articles/{id}", GetHandler{svc})
		mux.Handle("POST "+prefix+"/articles", writes(CreateHandler{svc}))
		mux.Handle("POST "+prefix+"/articles/{id}/comments", writes(CreateCommentHandler{svc}))
	}
}
