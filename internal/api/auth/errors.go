package auth

import "errors"

// Registration / login
var (
	ErrDuplicateIdentity  = errors.New("DuplicateIdentity")
	ErrInvalidCredentials = errors.New("InvalidCredentials")
)

// Token verification
var (
	ErrMissingCredentials = errors.New("MissingCredentials")
	ErrInvalidToken       = errors.New("InvalidToken")
	ErrExpiredToken       = errors.New("ExpiredToken")
	ErrUnauthorized       = errors.New("Unauthorized")
)
