package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/models"
)

// search looks up a civil id. Quota exhaustion answers 429, an invalid id
// 422 with the failed rule as error code.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SearchRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.SearchService.Search(r.Context(), id, req.CivilID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}

func (h *Handler) addBlock(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddBlockRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.BlocklistService.AddBlock(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, resp, http.StatusCreated)
}

func (h *Handler) listBlocks(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.BlocklistService.ListBlocks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, records, http.StatusOK)
}

func (h *Handler) removeBlock(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.BlocklistService.RemoveBlock(r.Context(), id, chi.URLParam(r, "civilID")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
