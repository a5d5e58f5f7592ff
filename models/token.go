package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated accounts.
//
// The standard "sub" claim carries the account ID; Role is a private claim
// used by the HTTP layer to gate admin-only routes without a database hit.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the role of the account at the time the token was issued.
	Role Role `json:"role"`
}

// Token wraps a signed JWT with convenience accessors for authentication flows.
type Token struct {
	// Claims is the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the account identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Role is a copy of Claims.Role.
	Role Role `json:"-"`
}

// GetUserID extracts the account identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
