package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"boost-engine/internal/core/domain"
	"boost-engine/internal/core/port"
)

// handleBoostClick charges a click against the boost in the path. A click
// that cannot be accepted still answers 200 with accepted=false; unknown
// boosts produce 404.
func (h *Handler) handleBoostClick(w http.ResponseWriter, r *http.Request) {
	h.recordClick(w, r, port.ClickRef{BoostID: chi.URLParam(r, "id")})
}

// handleTargetClick charges a click against whatever boost is active for the
// target. Targets without an active boost answer accepted=false.
func (h *Handler) handleTargetClick(w http.ResponseWriter, r *http.Request) {
	tt, err := domain.ParseTargetType(chi.URLParam(r, "targetType"))
	if err != nil {
		h.writeError(w, r, "click", err)
		return
	}
	target := domain.Target{Type: tt, ID: chi.URLParam(r, "targetID")}
	h.recordClick(w, r, port.ClickRef{Target: &target})
}

func (h *Handler) recordClick(w http.ResponseWriter, r *http.Request, ref port.ClickRef) {
	meta, err := clickMeta(r)
	if err != nil {
		h.writeError(w, r, "click", err)
		return
	}
	res, err := h.boosts.RecordClick(r.Context(), ref, meta)
	if err != nil {
		h.writeError(w, r, "click", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
