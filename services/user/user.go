package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "trimly/database/repository/user"
	"trimly/models"
	"trimly/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenTTL = 72 * time.Hour

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a customer account. Registration always produces the
// customer role; worker accounts are provisioned separately.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || !strings.Contains(email, "@") || len(password) < 8 {
		return nil, ErrInvalidInput
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, usr)
}

// Authenticate verifies email/password and issues a session token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil || usr.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, usr)
}

// SignOut revokes the active session token and clears the caller's
// persisted browsing preferences (the selected-worker pointer).
func (s *DefaultUserService) SignOut(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return err
	}

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("signout: failed to purge auth cache for %s: %v", userID, err)
	}

	if err := utils.ClearSelectedWorker(utils.GetCacheClient(), userID); err != nil {
		utils.GetLogger().Sugar().Warnf("signout: failed to clear preferences for %s: %v", userID, err)
	}
	return nil
}

// issueSession mints a JWT for the user, records its hash on the profile
// and mirrors it into the auth cache.
func (s *DefaultUserService) issueSession(ctx context.Context, usr *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	hash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"token_hash": hash}); err != nil {
		return nil, err
	}
	usr.TokenHash = hash

	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+usr.ID, hash, time.Hour).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("issueSession: failed to prime auth cache for %s: %v", usr.ID, err)
	}

	return &AuthResult{User: usr, Token: token}, nil
}
