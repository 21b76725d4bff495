package user

import "errors"

var (
	// ErrInvalidInput covers missing or malformed registration fields.
	ErrInvalidInput = errors.New("invalid account input")
	// ErrEmailTaken means an account with this email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidProviderToken means the identity-provider token failed
	// verification.
	ErrInvalidProviderToken = errors.New("identity provider token rejected")
)
