package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rental-blocklist/internal/civilid"
	"github.com/MKhiriev/rental-blocklist/internal/logger"
	"github.com/MKhiriev/rental-blocklist/internal/quota"
	"github.com/MKhiriev/rental-blocklist/internal/service"
	"github.com/MKhiriev/rental-blocklist/internal/store"
	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/internal/validators"
	"github.com/MKhiriev/rental-blocklist/models"
)

// errorStatusMap is matched with errors.Is from top to bottom, so a
// wrapped chain resolves to its first listed entry.
var errorStatusMap = []struct {
	target error
	status int
	code   string
}{
	{quota.ErrQuotaExceeded, http.StatusTooManyRequests, "quota_exceeded"},

	{validators.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
	{validators.ErrUnsupportedType, http.StatusInternalServerError, "internal"},
	{utils.ErrInvalidJSON, http.StatusBadRequest, "invalid_json"},
	{ErrInvalidPathParam, http.StatusBadRequest, "invalid_request"},
	{ErrInvalidQueryParam, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid_request"},
	{service.ErrCannotDeleteSelf, http.StatusBadRequest, "cannot_delete_self"},
	{service.ErrAdminHasNoQuota, http.StatusBadRequest, "admin_has_no_quota"},

	{service.ErrWrongPassword, http.StatusUnauthorized, "wrong_credentials"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "invalid_token"},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "unauthorized"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "unauthorized"},
	{ErrAdminOnly, http.StatusForbidden, "forbidden"},

	{store.ErrNoAccountWasFound, http.StatusNotFound, "account_not_found"},
	{store.ErrBlockNotFound, http.StatusNotFound, "block_not_found"},
	{store.ErrMessageNotFound, http.StatusNotFound, "message_not_found"},

	{store.ErrLoginAlreadyExists, http.StatusConflict, "username_taken"},
	{store.ErrDuplicateBlock, http.StatusConflict, "already_blocked"},

	{service.ErrUnhealthy, http.StatusServiceUnavailable, "unhealthy"},
}

// statusFromError returns the HTTP status and the machine-readable code for
// err. Civil id validation failures map to 422 with the failed rule as code.
func statusFromError(err error) (int, string) {
	if civilid.IsValidationError(err) {
		return http.StatusUnprocessableEntity, civilid.Reason(err)
	}

	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.code
		}
	}

	return http.StatusInternalServerError, "internal"
}

// writeError logs err and writes the matching JSON error response.
// Internal errors are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, code := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("code", code).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Str("code", code).Int("status", status).Msg("request rejected")
	}

	var reqErr *validators.RequestError
	if errors.As(err, &reqErr) {
		writeJSON(w, r, validationErrorResponse{
			ErrorResponse: models.ErrorResponse{Error: message, Code: code},
			Fields:        reqErr.Fields,
		}, status)
		return
	}

	writeErrorResponse(w, status, code, message)
}

// validationErrorResponse adds the per-field messages of a rejected request.
type validationErrorResponse struct {
	models.ErrorResponse
	Fields map[string]string `json:"fields"`
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: code}, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
