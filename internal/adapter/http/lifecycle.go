package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"boost-engine/internal/core/port"
)

type transitionFunc func(ctx context.Context, boostID, operatorID string) (*port.BoostView, error)

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "pause", h.boosts.Pause)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "resume", h.boosts.Resume)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "cancel", h.boosts.Cancel)
}

// transition runs a manual lifecycle change on behalf of the operator named
// in X-Operator-ID. Transitions not allowed from the current status answer
// 409.
func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op string, fn transitionFunc) {
	operator, err := operatorID(r)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	view, err := fn(r.Context(), chi.URLParam(r, "id"), operator)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}
