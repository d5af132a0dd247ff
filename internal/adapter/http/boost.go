package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"boost-engine/internal/core/domain"
)

// handleCreateBoost admits a settled purchase. It answers 201 with the new
// boost, 400 for a malformed or invalid config and 409 when the target
// already has an active boost or the payment was used.
func (h *Handler) handleCreateBoost(w http.ResponseWriter, r *http.Request) {
	var req createBoostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	a, err := req.admission()
	if err != nil {
		h.writeError(w, r, "create boost", err)
		return
	}
	view, err := h.boosts.CreateBoost(r.Context(), a)
	if err != nil {
		h.writeError(w, r, "create boost", err)
		return
	}
	w.Header().Set("Location", "/api/v1/boosts/"+view.ID)
	h.writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) handleGetBoost(w http.ResponseWriter, r *http.Request) {
	view, err := h.boosts.GetBoost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get boost", err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleListOwnerBoosts lists a seller's boosts, optionally filtered by the
// status query parameter.
func (h *Handler) handleListOwnerBoosts(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r, h.pageSize)
	if err != nil {
		h.writeError(w, r, "list boosts", err)
		return
	}
	var status *domain.BoostStatus
	if v := r.URL.Query().Get("status"); v != "" {
		st, err := domain.ParseBoostStatus(v)
		if err != nil {
			h.writeError(w, r, "list boosts", err)
			return
		}
		status = &st
	}
	views, err := h.boosts.ListOwnerBoosts(r.Context(), chi.URLParam(r, "ownerID"), status, page, size)
	if err != nil {
		h.writeError(w, r, "list boosts", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"items":    views,
		"page":     page,
		"pageSize": size,
	})
}

// handleListClicks returns the audit trail of a boost.
func (h *Handler) handleListClicks(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r, h.pageSize)
	if err != nil {
		h.writeError(w, r, "list clicks", err)
		return
	}
	clicks, err := h.boosts.ListClicks(r.Context(), chi.URLParam(r, "id"), page, size)
	if err != nil {
		h.writeError(w, r, "list clicks", err)
		return
	}
	if clicks == nil {
		clicks = []domain.ClickRecord{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"items":    clicks,
		"page":     page,
		"pageSize": size,
	})
}
