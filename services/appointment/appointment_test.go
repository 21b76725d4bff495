package appointment

import (
	"context"
	"errors"
	"testing"

	apptRepo "trimly/database/repository/appointment"
	"trimly/models"
	"trimly/services/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateActive(ctx context.Context, appt *models.Appointment) error {
	args := m.Called(ctx, appt)
	if appt != nil && args.Error(0) == nil {
		appt.ID = "appt-999" // simulate DB insert
		appt.Status = models.AppointmentPending
	}
	return args.Error(0)
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetByWorker(ctx context.Context, workerID string) ([]models.Appointment, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CountActiveForSlot(ctx context.Context, workerID, date, timeOfDay string) (int64, error) {
	args := m.Called(ctx, workerID, date, timeOfDay)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CountPendingForClient(ctx context.Context, clientID string) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatusIfPending(ctx context.Context, id string, newStatus models.AppointmentStatus) error {
	args := m.Called(ctx, id, newStatus)
	return args.Error(0)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Resolve(ctx context.Context, userID string) (*identity.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyAppointmentRequested(ctx context.Context, workerID string, appt *models.Appointment) error {
	args := m.Called(ctx, workerID, appt)
	return args.Error(0)
}

func (m *MockNotifier) NotifyAppointmentDecided(ctx context.Context, clientID string, appt *models.Appointment) error {
	args := m.Called(ctx, clientID, appt)
	return args.Error(0)
}

func customerGate(id, name string) *MockGate {
	gate := new(MockGate)
	gate.On("Resolve", mock.Anything, id).Return(&identity.Identity{ID: id, Name: name, Role: models.RoleCustomer}, nil)
	return gate
}

func workerGate(id, name string) *MockGate {
	gate := new(MockGate)
	gate.On("Resolve", mock.Anything, id).Return(&identity.Identity{ID: id, Name: name, Role: models.RoleWorker}, nil)
	return gate
}

func validRequest() CreateRequest {
	return CreateRequest{
		WorkerID: "worker-1",
		Service:  "fade cut",
		Price:    1500,
		Date:     "2026-09-10",
		Time:     "14:30",
	}
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(0), nil)
	repo.On("CountActiveForSlot", mock.Anything, "worker-1", "2026-09-10", "14:30").Return(int64(0), nil)
	repo.On("CreateActive", mock.Anything, mock.Anything).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyAppointmentRequested", mock.Anything, "worker-1", mock.Anything).Return(nil)

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar"), Notifier: notifier}

	appt, err := svc.Create(context.Background(), "client-1", validRequest())

	assert.NoError(t, err)
	assert.NotNil(t, appt)
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, "client-1", appt.ClientID)
	assert.Equal(t, "Omar", appt.ClientName)
	notifier.AssertCalled(t, "NotifyAppointmentRequested", mock.Anything, "worker-1", mock.Anything)
}

func TestService_Create_UnresolvedCaller(t *testing.T) {
	gate := new(MockGate)
	gate.On("Resolve", mock.Anything, "ghost").Return(nil, identity.ErrUnauthenticated)

	svc := &DefaultService{Repo: new(MockAppointmentRepository), Gate: gate}

	_, err := svc.Create(context.Background(), "ghost", validRequest())
	assert.ErrorIs(t, err, identity.ErrUnauthenticated)
}

func TestService_Create_WorkerCannotBook(t *testing.T) {
	svc := &DefaultService{Repo: new(MockAppointmentRepository), Gate: workerGate("worker-1", "Ali")}

	_, err := svc.Create(context.Background(), "worker-1", validRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_Validation(t *testing.T) {
	repo := new(MockAppointmentRepository)
	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar")}

	cases := map[string]func(*CreateRequest){
		"missing worker":  func(r *CreateRequest) { r.WorkerID = "" },
		"blank service":   func(r *CreateRequest) { r.Service = "   " },
		"missing date":    func(r *CreateRequest) { r.Date = "" },
		"malformed date":  func(r *CreateRequest) { r.Date = "10/09/2026" },
		"missing time":    func(r *CreateRequest) { r.Time = "" },
		"malformed time":  func(r *CreateRequest) { r.Time = "2pm" },
		"negative price":  func(r *CreateRequest) { r.Price = -1 },
		"out of range":    func(r *CreateRequest) { r.Time = "25:00" },
		"impossible date": func(r *CreateRequest) { r.Date = "2026-02-30" },
	}

	for name, corrupt := range cases {
		req := validRequest()
		corrupt(&req)
		_, err := svc.Create(context.Background(), "client-1", req)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
	repo.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicatePending(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(2), nil)

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar")}

	_, err := svc.Create(context.Background(), "client-1", validRequest())

	var dup *DuplicatePendingError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(2), dup.Count)
	repo.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything)
}

func TestService_Create_SlotConflict(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(0), nil)
	repo.On("CountActiveForSlot", mock.Anything, "worker-1", "2026-09-10", "14:30").Return(int64(1), nil)

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar")}

	_, err := svc.Create(context.Background(), "client-1", validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	repo.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything)
}

func TestService_Create_ConflictCheckFailsClosed(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(0), nil)
	repo.On("CountActiveForSlot", mock.Anything, "worker-1", "2026-09-10", "14:30").Return(int64(0), errors.New("primary stepped down"))

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar")}

	_, err := svc.Create(context.Background(), "client-1", validRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotConflict)
	repo.AssertNotCalled(t, "CreateActive", mock.Anything, mock.Anything)
}

// Two clients race for the same slot: the loser's insert trips the slot
// re-check inside the transaction and surfaces as a plain conflict.
func TestService_Create_LosesInsertRace(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-2").Return(int64(0), nil)
	repo.On("CountActiveForSlot", mock.Anything, "worker-1", "2026-09-10", "14:30").Return(int64(0), nil)
	repo.On("CreateActive", mock.Anything, mock.Anything).Return(apptRepo.ErrSlotTaken)

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-2", "Sami")}

	_, err := svc.Create(context.Background(), "client-2", validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestService_Create_PendingRaceSurfacesCount(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(0), nil).Once()
	repo.On("CountActiveForSlot", mock.Anything, "worker-1", "2026-09-10", "14:30").Return(int64(0), nil)
	repo.On("CreateActive", mock.Anything, mock.Anything).Return(apptRepo.ErrClientHasPending)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(1), nil)

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar")}

	_, err := svc.Create(context.Background(), "client-1", validRequest())

	var dup *DuplicatePendingError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(1), dup.Count)
}

func TestService_Create_NotificationFailureDoesNotFailBooking(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("CountPendingForClient", mock.Anything, "client-1").Return(int64(0), nil)
	repo.On("CountActiveForSlot", mock.Anything, "worker-1", "2026-09-10", "14:30").Return(int64(0), nil)
	repo.On("CreateActive", mock.Anything, mock.Anything).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyAppointmentRequested", mock.Anything, "worker-1", mock.Anything).Return(errors.New("fcm unreachable"))

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar"), Notifier: notifier}

	appt, err := svc.Create(context.Background(), "client-1", validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, appt)
}

func pendingAppt() *models.Appointment {
	return &models.Appointment{
		ID:       "appt-1",
		WorkerID: "worker-1",
		ClientID: "client-1",
		Service:  "fade cut",
		Date:     "2026-09-10",
		Time:     "14:30",
		Status:   models.AppointmentPending,
	}
}

func TestService_Transition_Confirm(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "appt-1").Return(pendingAppt(), nil)
	repo.On("UpdateStatusIfPending", mock.Anything, "appt-1", models.AppointmentConfirmed).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyAppointmentDecided", mock.Anything, "client-1", mock.Anything).Return(nil)

	svc := &DefaultService{Repo: repo, Gate: workerGate("worker-1", "Ali"), Notifier: notifier}

	appt, err := svc.Transition(context.Background(), "worker-1", "appt-1", models.AppointmentConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, appt.Status)
	notifier.AssertCalled(t, "NotifyAppointmentDecided", mock.Anything, "client-1", mock.Anything)
}

func TestService_Transition_Reject(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "appt-1").Return(pendingAppt(), nil)
	repo.On("UpdateStatusIfPending", mock.Anything, "appt-1", models.AppointmentRejected).Return(nil)

	notifier := new(MockNotifier)
	notifier.On("NotifyAppointmentDecided", mock.Anything, "client-1", mock.Anything).Return(nil)

	svc := &DefaultService{Repo: repo, Gate: workerGate("worker-1", "Ali"), Notifier: notifier}

	appt, err := svc.Transition(context.Background(), "worker-1", "appt-1", models.AppointmentRejected)

	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentRejected, appt.Status)
}

func TestService_Transition_PendingIsNotATarget(t *testing.T) {
	svc := &DefaultService{Repo: new(MockAppointmentRepository), Gate: workerGate("worker-1", "Ali")}

	_, err := svc.Transition(context.Background(), "worker-1", "appt-1", models.AppointmentPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_OtherWorkerForbidden(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "appt-1").Return(pendingAppt(), nil)

	svc := &DefaultService{Repo: repo, Gate: workerGate("worker-2", "Yusuf")}

	_, err := svc.Transition(context.Background(), "worker-2", "appt-1", models.AppointmentConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transition_ClientForbidden(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "appt-1").Return(pendingAppt(), nil)

	svc := &DefaultService{Repo: repo, Gate: customerGate("client-1", "Omar")}

	_, err := svc.Transition(context.Background(), "client-1", "appt-1", models.AppointmentConfirmed)
	assert.ErrorIs(t, err, ErrForbidden)
}

// A second decision on the same appointment finds it already terminal and
// must not overwrite the first.
func TestService_Transition_AlreadyDecided(t *testing.T) {
	decided := pendingAppt()
	decided.Status = models.AppointmentConfirmed

	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "appt-1").Return(decided, nil)
	repo.On("UpdateStatusIfPending", mock.Anything, "appt-1", models.AppointmentRejected).Return(apptRepo.ErrNotPending)

	svc := &DefaultService{Repo: repo, Gate: workerGate("worker-1", "Ali")}

	_, err := svc.Transition(context.Background(), "worker-1", "appt-1", models.AppointmentRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Transition_NotFound(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, apptRepo.ErrNotFound)

	svc := &DefaultService{Repo: repo, Gate: workerGate("worker-1", "Ali")}

	_, err := svc.Transition(context.Background(), "worker-1", "missing", models.AppointmentConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}
