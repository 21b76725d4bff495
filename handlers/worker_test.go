package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	userRepo "trimly/database/repository/user"
	"trimly/models"
	"trimly/services/review"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
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

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) ListForWorker(ctx context.Context, workerID string) ([]models.Review, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewService) Submit(ctx context.Context, actorID string, req review.SubmitRequest) (*models.Review, error) {
	args := m.Called(ctx, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Edit(ctx context.Context, actorID, reviewID string, rating int, comment string) (*models.Review, error) {
	args := m.Called(ctx, actorID, reviewID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, actorID, reviewID string) error {
	args := m.Called(ctx, actorID, reviewID)
	return args.Error(0)
}

func getWorkerRequest(t *testing.T, users *MockUserRepository, reviews *MockReviewService, workerID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/workers/"+workerID, nil)
	c.Params = gin.Params{{Key: "id", Value: workerID}}

	h := NewWorkerHandler(users, reviews, zap.NewNop())
	h.GetWorker(c)
	return w
}

func TestWorkerHandler_GetWorker_Success(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", "worker-1").Return(&models.User{ID: "worker-1", Name: "Ali", Role: models.RoleWorker}, nil)

	reviews := new(MockReviewService)
	reviews.On("ListForWorker", mock.Anything, "worker-1").Return([]models.Review{{Rating: 4}, {Rating: 5}}, nil)

	w := getWorkerRequest(t, users, reviews, "worker-1")

	assert.Equal(t, http.StatusOK, w.Code)

	var profile models.WorkerProfile
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "4.5", profile.Rating)
}

func TestWorkerHandler_GetWorker_NotFound(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", "missing").Return(nil, userRepo.ErrNotFound)

	w := getWorkerRequest(t, users, new(MockReviewService), "missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkerHandler_GetWorker_CustomerIsNotAWorker(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", "client-1").Return(&models.User{ID: "client-1", Role: models.RoleCustomer}, nil)

	w := getWorkerRequest(t, users, new(MockReviewService), "client-1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// A store outage is not a missing worker; it must surface as unavailable.
func TestWorkerHandler_GetWorker_StoreFailure(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByID", "worker-1").Return(nil, errors.New("no reachable servers"))

	w := getWorkerRequest(t, users, new(MockReviewService), "worker-1")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "store_unavailable")
}
