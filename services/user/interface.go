package user

import (
	"context"

	"trimly/models"
)

// AuthResult is returned by the sign-in flows: the profile plus a session token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines account operations: registration, sign-in via
// password or identity-provider token, and sign-out.
type UserService interface {
	// Register creates a customer account with a bcrypt-hashed password.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	// Authenticate verifies email/password and issues a session token.
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	// FirebaseSignIn verifies an identity-provider ID token, upserting the
	// profile keyed by the provider UID, and issues a session token.
	FirebaseSignIn(ctx context.Context, idToken string) (*AuthResult, error)
	// SignOut revokes the active session token and clears the caller's
	// persisted browsing preferences.
	SignOut(ctx context.Context, userID string) error
}
