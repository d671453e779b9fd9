package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-zk-drive/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseToken wraps a raw bearer token. When raw is a JWT its "exp" claim is
// read without verifying the signature: the client cannot verify server
// tokens and only uses the expiry to avoid sending stale ones. Opaque tokens
// are accepted with a zero expiry.
func ParseToken(raw string) (models.Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.Token{}, errors.New("empty token")
	}

	token := models.Token{Raw: raw}
	if strings.Count(raw, ".") != 2 {
		return token, nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return models.Token{}, fmt.Errorf("read token expiry: %w", err)
	}
	if exp != nil {
		token.ExpiresAt = exp.Time
	}

	return token, nil
}
