package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/rental-blocklist/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates an HMAC-SHA256 signed token for the account.
//
// The token carries iss, sub (account ID), iat, exp and the private "role"
// claim. issuer, tokenDuration and signKey are required.
func GenerateJWTToken(issuer string, userID int64, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, UserID: userID, Role: role}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the account ID and role.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}
	if !claims.Role.IsValid() {
		return models.Token{}, fmt.Errorf("unknown role %q in token", claims.Role)
	}

	token := models.Token{Claims: *claims, SignedString: tokenString, Role: claims.Role}
	token.UserID, err = token.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
