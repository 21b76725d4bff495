package user

import (
	"context"
	"errors"
	"strings"

	userRepo "trimly/database/repository/user"
	"trimly/models"
	"trimly/utils"
)

// FirebaseSignIn verifies an identity-provider ID token with the Firebase
// Auth client and signs the holder in, creating the profile on first sight.
// The profile is keyed by the provider UID so repeat sign-ins resolve to
// the same account.
func (s *DefaultUserService) FirebaseSignIn(ctx context.Context, idToken string) (*AuthResult, error) {
	if idToken == "" {
		return nil, ErrInvalidProviderToken
	}

	decoded, err := utils.FirebaseAuthClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, ErrInvalidProviderToken
	}

	email, _ := decoded.Claims["email"].(string)
	name, _ := decoded.Claims["name"].(string)
	if name == "" && email != "" {
		// Same fallback the web client used for display names.
		name = strings.SplitN(email, "@", 2)[0]
	}

	usr, err := s.lookupOrProvision(decoded.UID, name, email)
	if err != nil {
		return nil, err
	}

	return s.issueSession(ctx, usr)
}

// lookupOrProvision resolves the profile behind a provider UID. Only a
// confirmed missing document triggers the first-sign-in create; any other
// lookup failure propagates so an outage never turns into a write.
func (s *DefaultUserService) lookupOrProvision(uid, name, email string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(uid, nil)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, err
	}

	usr = &models.User{
		ID:    uid,
		Name:  name,
		Email: strings.ToLower(email),
		Role:  models.RoleCustomer,
	}
	if createErr := s.Repo.Create(usr); createErr != nil {
		return nil, createErr
	}
	return usr, nil
}
