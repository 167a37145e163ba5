package users

import "errors"

var (
	ErrMissingEmail    = errors.New("Missing email")
	ErrMissingPassword = errors.New("Missing password")
	ErrAlreadyExists   = errors.New("Already exist")
	ErrNotFound        = errors.New("user not found")
)
