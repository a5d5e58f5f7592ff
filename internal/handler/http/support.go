package http

import (
	"net/http"

	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/models"
)

func (h *Handler) submitGuestMessage(w http.ResponseWriter, r *http.Request) {
	var req models.GuestMessageRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.SupportService.SubmitGuestMessage(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, message, http.StatusCreated)
}

func (h *Handler) submitSupportMessage(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SupportMessageRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.SupportService.SubmitMessage(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, resp, http.StatusCreated)
}

// listSupportMessages supports ?status= and ?priority= filters.
func (h *Handler) listSupportMessages(w http.ResponseWriter, r *http.Request) {
	filter := models.SupportFilter{
		Status:   models.MessageStatus(r.URL.Query().Get("status")),
		Priority: models.Priority(r.URL.Query().Get("priority")),
	}

	messages, err := h.services.SupportService.ListMessages(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, messages, http.StatusOK)
}

func (h *Handler) updateSupportStatus(w http.ResponseWriter, r *http.Request) {
	id, err := int64PathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StatusUpdateRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.SupportService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, message, http.StatusOK)
}
