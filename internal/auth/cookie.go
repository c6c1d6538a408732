// Maintainarr - Media Server Dashboard and Ratings Aggregation
// Copyright 2026 Maintainarr contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/maintainarr/maintainarr

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCookie is returned for a session cookie that does not verify.
var ErrInvalidCookie = errors.New("invalid session cookie")

// CookieSigner signs session ids into HS256 tokens so the cookie value
// cannot be forged without SESSION_SECRET.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer keyed by secret.
func NewCookieSigner(secret string) (*CookieSigner, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &CookieSigner{secret: []byte(secret)}, nil
}

// Sign returns the cookie value carrying sid.
func (s *CookieSigner) Sign(sid string, expires time.Time) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sid,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

// Verify checks value and returns the sid it carries.
func (s *CookieSigner) Verify(value string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if !token.Valid || claims.ID == "" {
		return "", ErrInvalidCookie
	}
	return claims.ID, nil
}
