package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/rental-blocklist/internal/utils"
	"github.com/MKhiriev/rental-blocklist/models"
)

// auth rejects requests without a valid bearer token with 401. On success
// the account ID and role from the token are stored in the request context
// (see [utils.WithUser]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin must run after auth. The role is taken from the token, so a
// demoted account keeps admin access until its token expires.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != models.RoleAdmin {
			writeError(w, r, ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// accountID returns the authenticated account of the request. Routes behind
// auth always have one; a missing value is treated as an invalid token.
func accountID(r *http.Request) (int64, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrEmptyAuthorizationHeader
	}
	return id, nil
}
