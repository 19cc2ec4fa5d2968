package service

import (
	"context"
	"time"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/websocket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmailOrUsername(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, page, limit int) ([]repository.UserRow, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]repository.UserRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ListManagers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockRequestRepository is a mock implementation of repository.RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

var _ repository.RequestRepository = (*MockRequestRepository)(nil)

func (m *MockRequestRepository) Create(ctx context.Context, request *model.Request) error {
	args := m.Called(ctx, request)
	if args.Error(0) == nil && request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Request), args.Error(1)
}

func (m *MockRequestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]repository.RequestRow, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]repository.RequestRow), args.Error(1)
}

func (m *MockRequestRepository) ListAll(ctx context.Context) ([]repository.RequestRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.RequestRow), args.Error(1)
}

func (m *MockRequestRepository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]repository.RequestRow, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]repository.RequestRow), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, request *model.Request) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockMasterRepository is a mock implementation of repository.MasterRepository
type MockMasterRepository struct {
	mock.Mock
}

var _ repository.MasterRepository = (*MockMasterRepository)(nil)

func (m *MockMasterRepository) CreateType(ctx context.Context, t *model.LookupType) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil && t.Code == 0 {
		t.Code = 1
	}
	return args.Error(0)
}

func (m *MockMasterRepository) ListTypes(ctx context.Context) ([]model.LookupType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.LookupType), args.Error(1)
}

func (m *MockMasterRepository) GetTypeByID(ctx context.Context, id uuid.UUID) (*model.LookupType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LookupType), args.Error(1)
}

func (m *MockMasterRepository) UpdateType(ctx context.Context, t *model.LookupType) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockMasterRepository) CreateOption(ctx context.Context, o *model.OptionType) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil && o.Code == 0 {
		o.Code = 1
	}
	return args.Error(0)
}

func (m *MockMasterRepository) ListOptions(ctx context.Context) ([]model.OptionType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.OptionType), args.Error(1)
}

func (m *MockMasterRepository) GetOptionByID(ctx context.Context, id uuid.UUID) (*model.OptionType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptionType), args.Error(1)
}

func (m *MockMasterRepository) GetOptionByCode(ctx context.Context, code int) (*model.OptionType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptionType), args.Error(1)
}

func (m *MockMasterRepository) UpdateOption(ctx context.Context, o *model.OptionType) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// stubMailer is a no-op mailer. Notification sends happen on goroutines, so
// tests use a stub that is safe to call concurrently and assert nothing on it.
type stubMailer struct{}

func (stubMailer) SendWelcome(to, employeeName, email, tempPassword, resetLink string) error {
	return nil
}

func (stubMailer) SendRequestNotification(to, managerName, employeeName, employeeEmail, requestTypeName, description string, from, until time.Time) error {
	return nil
}

func (stubMailer) SendPasswordUpdated(to, employeeName, userName string) error {
	return nil
}

// stubStore records saved paths in memory
type stubStore struct {
	saved []string
}

func (s *stubStore) SaveBase64(relPath, data string) error {
	s.saved = append(s.saved, relPath)
	return nil
}

// stubHub swallows broadcast events
type stubHub struct{}

func (stubHub) PublishRequestEvent(event websocket.RequestEvent) {}
