package article

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

const msgArticleNotFound = "article not found"

// errInvalidBody marks a request body that is not a JSON object.
// Wrongly typed field values are validation errors instead.
var errInvalidBody = errors.New(respond.MsgInvalidRequestBody)

// StatusFor maps a use case error to its HTTP status code.
// An id that cannot name an article is reported like any unknown article.
func StatusFor(err error) int {
	var verrs entity.ValidationErrors
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, artUC.ErrArticleNotFound),
		errors.Is(err, artUC.ErrInvalidArticleID),
		errors.Is(err, entity.ErrNotFound),
		errors.Is(err, pathutil.ErrInvalidID):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusFor(err)
	switch code {
	case http.StatusNotFound:
		respond.Error(w, code, msgArticleNotFound)
	case http.StatusBadRequest:
		respond.Error(w, code, respond.MsgInvalidRequestBody)
	default:
		respond.SafeError(r.Context(), w, code, err)
	}
}

// decodeFields reads a JSON object and returns the named string fields.
// An empty body or null is treated as {} so that missing fields surface as
// validation errors, as does a null value. A field holding any other
// non-string value is reported with the string rule. errInvalidBody is
// returned only when the body is not a JSON object.
func decodeFields(r *http.Request, fields ...string) (map[string]string, entity.ValidationErrors, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, errInvalidBody
	}

	values := make(map[string]string, len(fields))
	var mismatched entity.ValidationErrors
	for _, field := range fields {
		v, ok := raw[field]
		if !ok || bytes.Equal(v, jsonNull) {
			continue
		}
		var str string
		if err := json.Unmarshal(v, &str); err != nil {
			mismatched = append(mismatched, entity.NewTypeError(field))
			continue
		}
		values[field] = str
	}
	return values, mismatched, nil
}

var jsonNull = []byte("null")
