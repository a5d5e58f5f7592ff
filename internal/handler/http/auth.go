package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/models"
)

// register creates a user account and logs it in: the token is returned in
// the "Authorization" response header, the profile in the body.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, account, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", account.AccountID).Msg("account logged in")

	h.respondWithToken(w, r, account, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, account models.Account, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), account)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, account, status)
}

// logout only records the event; tokens are stateless and stay valid until
// they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.Me(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, account, http.StatusOK)
}
