package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexanderramin/rdmanage/internal/domain"
	"github.com/alexanderramin/rdmanage/internal/repository"
	"github.com/go-chi/chi/v5"
)

// Error kinds reported in the "error" field of failure responses.
const (
	KindValidation       = "validation"
	KindInvalidReference = "invalid_reference"
	KindConflict         = "conflict"
	KindNotFound         = "not_found"
	KindInternal         = "internal"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

// classify maps a service error to its HTTP status and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusBadRequest, KindInvalidReference
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, KindConflict
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, KindNotFound
	}
	return http.StatusInternalServerError, KindInternal
}

// writeError classifies err and writes it. Internal errors are logged and
// replaced with a generic message.
func (a *api) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := classify(err)
	msg := err.Error()
	if kind == KindInternal {
		a.logger.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("error", err.Error()),
		)
		msg = "internal server error"
	}
	writeJSONError(w, status, kind, msg)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", domain.ErrValidation, err)
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return id, nil
}

// queryInt64 reads an optional integer query parameter.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrValidation, name, raw)
	}
	return &v, nil
}

// listOrEmpty keeps empty listings encoded as [] rather than null.
func listOrEmpty[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}

// respond writes v with status, or the classified error when err is set.
func (a *api) respond(w http.ResponseWriter, r *http.Request, status int, v any, err error) {
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, v)
}
