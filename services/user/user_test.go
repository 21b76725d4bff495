package user

import (
	"errors"
	"testing"

	userRepo "trimly/database/repository/user"
	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// Mock repositories
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetWorkers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateSetDocument(id string, updateDoc bson.M) error {
	args := m.Called(id, updateDoc)
	return args.Error(0)
}

func (m *MockUserRepository) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	args := m.Called(id, projection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestService_LookupOrProvision_ExistingProfile(t *testing.T) {
	existing := &models.User{ID: "uid-1", Name: "Omar", Email: "omar@example.com", Role: models.RoleCustomer}

	repo := new(MockUserRepository)
	repo.On("GetByIDWithProjection", "uid-1", mock.Anything).Return(existing, nil)

	svc := &DefaultUserService{Repo: repo}

	usr, err := svc.lookupOrProvision("uid-1", "Omar", "omar@example.com")

	assert.NoError(t, err)
	assert.Equal(t, existing, usr)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestService_LookupOrProvision_FirstSignIn(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByIDWithProjection", "uid-1", mock.Anything).Return(nil, userRepo.ErrNotFound)
	repo.On("Create", mock.Anything).Return(nil)

	svc := &DefaultUserService{Repo: repo}

	usr, err := svc.lookupOrProvision("uid-1", "Omar", "Omar@Example.com")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", usr.ID)
	assert.Equal(t, "Omar", usr.Name)
	assert.Equal(t, "omar@example.com", usr.Email)
	assert.Equal(t, models.RoleCustomer, usr.Role)
	repo.AssertCalled(t, "Create", mock.Anything)
}

// An outage during the lookup must propagate, never masquerade as a first
// sign-in and attempt a write.
func TestService_LookupOrProvision_StoreFailurePropagates(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByIDWithProjection", "uid-1", mock.Anything).Return(nil, errors.New("connection reset by peer"))

	svc := &DefaultUserService{Repo: repo}

	_, err := svc.lookupOrProvision("uid-1", "Omar", "omar@example.com")

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}
