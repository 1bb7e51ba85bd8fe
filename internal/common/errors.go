// Package common defines shared constants and sentinel errors used across
// the jobapp core, the terminal client and the HTTP API. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoActiveSession    = errors.New("no active session")

	// Catalog errors.
	ErrPostingNotFound  = errors.New("posting not found")
	ErrDuplicatePosting = errors.New("duplicate posting id")

	// Directory errors.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// Token errors (HTTP API).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
