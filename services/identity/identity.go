package identity

import (
	"context"
	"errors"

	userRepo "trimly/database/repository/user"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnauthenticated is returned whenever a caller's identity cannot be
// resolved: missing user, missing or unknown role, or a lookup failure.
// Gated operations must not proceed on this error.
var ErrUnauthenticated = errors.New("caller identity could not be resolved")

// Identity is the resolved caller: who they are and which side of the
// marketplace they act on.
type Identity struct {
	ID   string
	Name string
	Role models.Role
}

// Gate resolves caller identities. The role is re-read from the profile on
// every call; nothing is cached across operations, so a role change takes
// effect on the next request.
type Gate interface {
	Resolve(ctx context.Context, userID string) (*Identity, error)
}

// DefaultGate resolves identities from the user repository.
type DefaultGate struct {
	Users userRepo.UserRepository
}

func NewDefaultGate(users userRepo.UserRepository) *DefaultGate {
	return &DefaultGate{Users: users}
}

// Resolve looks up the profile behind userID and returns its identity.
// Any failure collapses into ErrUnauthenticated: a caller we cannot place
// is a caller we do not serve.
func (g *DefaultGate) Resolve(ctx context.Context, userID string) (*Identity, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	proj := bson.M{"id": 1, "name": 1, "role": 1}
	usr, err := g.Users.GetByIDWithProjection(userID, proj)
	if err != nil || usr == nil {
		return nil, ErrUnauthenticated
	}

	role, ok := models.ParseRole(string(usr.Role))
	if !ok {
		return nil, ErrUnauthenticated
	}

	return &Identity{ID: usr.ID, Name: usr.Name, Role: role}, nil
}
