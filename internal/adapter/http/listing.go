package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"boost-engine/internal/core/domain"
)

// handleListing serves the public ranked feed of products or events.
// Supported query parameters are q, category, shop_id, sort, order, page and
// page_size. Boosted items lead every first page; the rest is shuffled per
// request, so responses are marked as not cacheable.
func (h *Handler) handleListing(w http.ResponseWriter, r *http.Request) {
	tt, err := domain.ParseTargetType(chi.URLParam(r, "targetType"))
	if err != nil {
		h.writeError(w, r, "listing", err)
		return
	}
	q := r.URL.Query()
	sort, err := domain.ParseSortSpec(q.Get("sort"), q.Get("order"))
	if err != nil {
		h.writeError(w, r, "listing", err)
		return
	}
	page, size, err := pageParams(r, h.pageSize)
	if err != nil {
		h.writeError(w, r, "listing", err)
		return
	}

	result, err := h.listings.List(r.Context(), domain.CatalogQuery{
		Type:     tt,
		Search:   q.Get("q"),
		Category: q.Get("category"),
		ShopID:   q.Get("shop_id"),
		Sort:     sort,
	}, page, size)
	if err != nil {
		h.writeError(w, r, "listing", err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.writeJSON(w, http.StatusOK, result)
}
