package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"boost-engine/internal/core/domain"
)

type boostStatsResponse struct {
	BoostID             string             `json:"boostId"`
	Status              domain.BoostStatus `json:"status"`
	IsEffectivelyActive bool               `json:"isEffectivelyActive"`
	domain.BoostStats
}

// handleBoostStats returns the live counters of a boost for the seller
// dashboard. Unknown ids produce HTTP 404.
func (h *Handler) handleBoostStats(w http.ResponseWriter, r *http.Request) {
	view, err := h.boosts.GetBoost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "boost stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, boostStatsResponse{
		BoostID:             view.ID,
		Status:              view.Status,
		IsEffectivelyActive: view.IsEffectivelyActive,
		BoostStats:          view.Stats,
	})
}
