package service

import (
	"context"
	"testing"
	"time"

	"hrms-backend/internal/model"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserServiceForTest(users *MockUserRepository) UserService {
	return NewUserService(users, stubMailer{}, "http://localhost:5173", testLogger())
}

func validCreateEmployeeDTO() CreateEmployeeDTO {
	return CreateEmployeeDTO{
		EmployeeName:   "John Doe",
		EmployeeNumber: "1234",
		DateOfJoining:  time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Email:          "jdoe@example.com",
		Phone:          "555-0100",
		Position:       "Engineer",
		Department:     "Platform",
		Role:           model.RoleEmployee,
	}
}

func TestCreateEmployeeInvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	req := validCreateEmployeeDTO()
	req.Role = "superuser"

	_, err := svc.CreateEmployee(context.Background(), req, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	users.AssertNotCalled(t, "Create")
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	users.On("GetByEmail", mock.Anything, "jdoe@example.com").Return(&model.User{ID: uuid.New()}, nil)

	_, err := svc.CreateEmployee(context.Background(), validCreateEmployeeDTO(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestCreateEmployeeSuccess(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	adminID := uuid.New()
	var stored *model.User
	users.On("GetByEmail", mock.Anything, "jdoe@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*model.User)
	}).Return(nil)

	created, err := svc.CreateEmployee(context.Background(), validCreateEmployeeDTO(), adminID)
	assert.NoError(t, err)
	assert.Equal(t, "jdoe1234", created.Username)

	assert.NotNil(t, stored)
	assert.True(t, stored.IsTempPassword)
	assert.True(t, stored.IsActive)
	assert.Equal(t, &adminID, stored.CreatedBy)
	// The stored password is a bcrypt hash, never the plaintext
	assert.NotEmpty(t, stored.Password)
	_, err = bcrypt.Cost([]byte(stored.Password))
	assert.NoError(t, err)
}

func TestCreateEmployeeUnknownManager(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	managerID := uuid.New()
	req := validCreateEmployeeDTO()
	req.Manager = managerID.String()

	users.On("GetByEmail", mock.Anything, "jdoe@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByID", mock.Anything, managerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateEmployee(context.Background(), req, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateEmployeePartial(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	userID := uuid.New()
	adminID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(&model.User{
		ID: userID, EmployeeName: "John Doe", Position: "Engineer", Role: model.RoleEmployee, IsActive: true,
	}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	inactive := false
	updated, err := svc.UpdateEmployee(context.Background(), userID.String(), UpdateEmployeeDTO{
		Position: "Senior Engineer",
		Role:     model.RoleManager,
		IsActive: &inactive,
	}, adminID)
	assert.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, model.RoleManager, updated.Role)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the merge
	assert.Equal(t, "John Doe", updated.EmployeeName)
	assert.Equal(t, &adminID, updated.UpdatedBy)
}

func TestUpdateEmployeeInvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(&model.User{ID: userID, Role: model.RoleEmployee}, nil)

	_, err := svc.UpdateEmployee(context.Background(), userID.String(), UpdateEmployeeDTO{Role: "owner"}, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestGetUserBadID(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	_, err := svc.GetUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestListManagersShape(t *testing.T) {
	users := new(MockUserRepository)
	svc := newUserServiceForTest(users)

	managerID := uuid.New()
	users.On("ListManagers", mock.Anything).Return([]model.User{
		{ID: managerID, EmployeeName: "Meg Manager", Email: "meg@example.com"},
	}, nil)

	options, err := svc.ListManagers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, options, 1)
	assert.Equal(t, managerID, options[0].ID)
	assert.Equal(t, "Meg Manager", options[0].EmployeeName)
}
