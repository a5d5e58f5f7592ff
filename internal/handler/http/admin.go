package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/models"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, accounts, http.StatusOK)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.CreateAccount(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, account, http.StatusCreated)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	callerID, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := int64PathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), callerID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setRemainingSearches(w http.ResponseWriter, r *http.Request) {
	id, err := int64PathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SetSearchesRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.SetRemainingSearches(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, account, http.StatusOK)
}

// updateCredentials changes the username and password of the calling admin.
func (h *Handler) updateCredentials(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateCredentialsRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.UpdateCredentials(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, account, http.StatusOK)
}

// listActivity supports ?q= for a case-insensitive substring filter and
// ?limit= for the number of entries.
func (h *Handler) listActivity(w http.ResponseWriter, r *http.Request) {
	filter := models.ActivityFilter{Query: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: limit %q", ErrInvalidQueryParam, raw))
			return
		}
		filter.Limit = limit
	}

	activities, err := h.services.ActivityService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, activities, http.StatusOK)
}

func int64PathParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidPathParam, name, raw)
	}
	return value, nil
}
