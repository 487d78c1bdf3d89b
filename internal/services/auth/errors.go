package auth

import "errors"

// ErrInvalidToken is returned when a session token fails signature or
// expiry verification, or carries an unusable payload.
var ErrInvalidToken = errors.New("invalid token")

// ErrInvalidDuration is returned for an expiry spec that does not match
// <number><unit> with unit one of d, h, m, s.
var ErrInvalidDuration = errors.New("invalid duration format")

// ErrTokenGeneration is returned when signing a session token fails.
var ErrTokenGeneration = errors.New("failed to generate token")
