package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"boost-engine/internal/core/domain"
)

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to HTTP statuses. Unknown errors are logged
// and answered with a generic 500 so internals do not leak.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidConfig), errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrBoostNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateActiveBoost),
		errors.Is(err, domain.ErrPaymentAlreadyUsed),
		errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrConcurrencyExhausted):
		w.Header().Set("Retry-After", "1")
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
