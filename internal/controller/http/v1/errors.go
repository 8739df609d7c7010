package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/damage_assessor/internal/pipeline"
)

const (
	kindInvalidInput  = "invalid_input"
	kindConfiguration = "configuration"
	kindNotFound      = "not_found"
	kindInternal      = "internal"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// classify maps an error to its response kind and status. Internal errors get
// the fallback message so that storage details do not leak to callers.
func classify(err error, fallback string) (status int, kind, message string) {
	switch {
	case errors.Is(err, pipeline.ErrInvalidInput):
		return http.StatusBadRequest, kindInvalidInput, err.Error()
	case errors.Is(err, pipeline.ErrConfiguration):
		return http.StatusInternalServerError, kindConfiguration, err.Error()
	case errors.Is(err, pipeline.ErrNotFound):
		return http.StatusNotFound, kindNotFound, err.Error()
	default:
		return http.StatusInternalServerError, kindInternal, fallback
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string) {
	status, kind, message := classify(err, fallback)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("kind", kind),
			slog.String("err", err.Error()),
		)
	}

	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Kind: kind, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
