package auth

import "errors"

// ErrUnauthorized covers every credential and token failure; the API never
// distinguishes between a bad password, a malformed header and a dead token.
var ErrUnauthorized = errors.New("unauthorized")
