package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrModelUnavailable indicates the generative model could not be reached
	// or refused the call (transport, quota, or auth failure upstream)
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrNoSourceText indicates no text could be resolved for generation
	ErrNoSourceText = errors.New("no source text available")
)
