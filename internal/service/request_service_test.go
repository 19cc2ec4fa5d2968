package service

import (
	"context"
	"io"
	"testing"
	"time"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newRequestServiceForTest(users *MockUserRepository, requests *MockRequestRepository, master *MockMasterRepository) (RequestService, *stubStore) {
	store := &stubStore{}
	svc := NewRequestService(requests, users, master, store, stubMailer{}, stubHub{}, testLogger())
	return svc, store
}

func TestCreateRequestWithoutManager(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	requesterID := uuid.New()
	users.On("GetByID", mock.Anything, requesterID).Return(&model.User{ID: requesterID}, nil)

	_, err := svc.Create(context.Background(), requesterID, CreateRequestDTO{
		RequestTypeCode: 1,
		Description:     "annual leave",
		From:            time.Now(),
		To:              time.Now().AddDate(0, 0, 2),
	})
	assert.ErrorIs(t, err, apperrors.ErrManagerNotAssigned)
	requests.AssertNotCalled(t, "Create")
}

func TestCreateRequestDanglingManager(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	requesterID := uuid.New()
	managerID := uuid.New()
	users.On("GetByID", mock.Anything, requesterID).Return(&model.User{ID: requesterID, ManagerID: &managerID}, nil)
	users.On("GetByID", mock.Anything, managerID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), requesterID, CreateRequestDTO{
		RequestTypeCode: 1,
		Description:     "annual leave",
		From:            time.Now(),
		To:              time.Now(),
	})
	assert.ErrorIs(t, err, apperrors.ErrManagerNotAssigned)
}

func TestCreateRequestSuccess(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, store := newRequestServiceForTest(users, requests, master)

	requesterID := uuid.New()
	managerID := uuid.New()
	users.On("GetByID", mock.Anything, requesterID).Return(&model.User{
		ID: requesterID, ManagerID: &managerID, EmployeeName: "John Doe", Email: "jdoe@example.com",
	}, nil)
	users.On("GetByID", mock.Anything, managerID).Return(&model.User{
		ID: managerID, EmployeeName: "Meg Manager", Email: "meg@example.com",
	}, nil)
	master.On("GetOptionByCode", mock.Anything, 3).Return(&model.OptionType{Code: 3, Name: "Sick Leave"}, nil)
	requests.On("Create", mock.Anything, mock.AnythingOfType("*model.Request")).Return(nil)

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	request, err := svc.Create(context.Background(), requesterID, CreateRequestDTO{
		RequestTypeCode: 3,
		Description:     "flu",
		From:            from,
		To:              to,
		File:            "aGVsbG8=",
		FileName:        "note.pdf",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RequestPending, request.Status)
	assert.Equal(t, requesterID, request.EmployeeID)
	assert.Equal(t, &managerID, request.ManagerID)
	assert.True(t, request.Days.Equal(decimal.NewFromInt(3)), "inclusive day count")
	assert.Len(t, store.saved, 1)
	assert.Equal(t, store.saved[0], request.FilePath)
}

func TestRespondByWrongManager(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	employeeID := uuid.New()
	realManagerID := uuid.New()
	otherManagerID := uuid.New()
	requestID := uuid.New()

	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, EmployeeID: employeeID, Status: model.RequestPending,
	}, nil)
	users.On("GetByID", mock.Anything, employeeID).Return(&model.User{
		ID: employeeID, ManagerID: &realManagerID,
	}, nil)

	_, err := svc.Respond(context.Background(), otherManagerID, model.RoleManager, RespondRequestDTO{
		ID:     requestID.String(),
		Status: model.RequestApproved,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
	requests.AssertNotCalled(t, "Update")
}

func TestRespondByAssignedManager(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	employeeID := uuid.New()
	managerID := uuid.New()
	requestID := uuid.New()

	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, EmployeeID: employeeID, ManagerID: &managerID, Status: model.RequestPending,
	}, nil)
	users.On("GetByID", mock.Anything, employeeID).Return(&model.User{
		ID: employeeID, ManagerID: &managerID,
	}, nil)
	requests.On("Update", mock.Anything, mock.AnythingOfType("*model.Request")).Return(nil)

	request, err := svc.Respond(context.Background(), managerID, model.RoleManager, RespondRequestDTO{
		ID:     requestID.String(),
		Status: model.RequestApproved,
		Reply:  "enjoy",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RequestApproved, request.Status)
	assert.Equal(t, "enjoy", request.Reply)
	assert.Equal(t, &managerID, request.ResponseBy)
	assert.NotNil(t, request.ResponseAt)
}

func TestRespondByAdminBypassesHierarchy(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	adminID := uuid.New()
	requestID := uuid.New()

	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, EmployeeID: uuid.New(), Status: model.RequestPending,
	}, nil)
	requests.On("Update", mock.Anything, mock.AnythingOfType("*model.Request")).Return(nil)

	request, err := svc.Respond(context.Background(), adminID, model.RoleAdmin, RespondRequestDTO{
		ID:     requestID.String(),
		Status: model.RequestRejected,
		Reply:  "no budget",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RequestRejected, request.Status)
	users.AssertNotCalled(t, "GetByID")
}

func TestRespondFinalizedRequest(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	requestID := uuid.New()
	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, Status: model.RequestApproved,
	}, nil)

	_, err := svc.Respond(context.Background(), uuid.New(), model.RoleAdmin, RespondRequestDTO{
		ID:     requestID.String(),
		Status: model.RequestRejected,
	})
	assert.ErrorIs(t, err, apperrors.ErrRequestFinalized)
}

func TestRespondMissingRequest(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	requestID := uuid.New()
	requests.On("GetByID", mock.Anything, requestID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Respond(context.Background(), uuid.New(), model.RoleAdmin, RespondRequestDTO{
		ID:     requestID.String(),
		Status: model.RequestApproved,
	})
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)

	// A malformed id is indistinguishable from a missing row
	_, err = svc.Respond(context.Background(), uuid.New(), model.RoleAdmin, RespondRequestDTO{
		ID:     "not-a-uuid",
		Status: model.RequestApproved,
	})
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestRespondSoftDeletedRequest(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	requestID := uuid.New()
	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, Status: model.RequestPending, IsDeleted: true,
	}, nil)

	_, err := svc.Respond(context.Background(), uuid.New(), model.RoleAdmin, RespondRequestDTO{
		ID:     requestID.String(),
		Status: model.RequestApproved,
	})
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestListForApproverScoping(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	managerID := uuid.New()
	all := []repository.RequestRow{{}, {}, {}}
	scoped := []repository.RequestRow{{}}

	requests.On("ListAll", mock.Anything).Return(all, nil)
	requests.On("ListByManager", mock.Anything, managerID).Return(scoped, nil)

	got, err := svc.ListForApprover(context.Background(), managerID, model.RoleSuperAdmin)
	assert.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = svc.ListForApprover(context.Background(), managerID, model.RoleManager)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdateRequestByNonCreator(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	requestID := uuid.New()
	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, EmployeeID: uuid.New(), Status: model.RequestPending,
	}, nil)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateRequestDTO{ID: requestID.String(), Description: "edited"})
	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
}

func TestUpdateRequestRecomputesDays(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	creatorID := uuid.New()
	requestID := uuid.New()
	from := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	requests.On("GetByID", mock.Anything, requestID).Return(&model.Request{
		ID: requestID, EmployeeID: creatorID, Status: model.RequestPending,
		From: from, To: from, Days: decimal.NewFromInt(1),
	}, nil)
	requests.On("Update", mock.Anything, mock.AnythingOfType("*model.Request")).Return(nil)

	newTo := from.AddDate(0, 0, 4)
	request, err := svc.Update(context.Background(), creatorID, UpdateRequestDTO{
		ID: requestID.String(),
		To: &newTo,
	})
	assert.NoError(t, err)
	assert.True(t, request.Days.Equal(decimal.NewFromInt(5)))
}

func TestDeleteRequestAuthorization(t *testing.T) {
	users := new(MockUserRepository)
	requests := new(MockRequestRepository)
	master := new(MockMasterRepository)
	svc, _ := newRequestServiceForTest(users, requests, master)

	creatorID := uuid.New()
	requestID := uuid.New()
	load := func() *model.Request {
		return &model.Request{ID: requestID, EmployeeID: creatorID, Status: model.RequestPending}
	}

	requests.On("GetByID", mock.Anything, requestID).Return(load(), nil).Once()
	_, err := svc.Delete(context.Background(), uuid.New(), model.RoleEmployee, requestID.String())
	assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)

	requests.On("GetByID", mock.Anything, requestID).Return(load(), nil).Once()
	requests.On("Update", mock.Anything, mock.AnythingOfType("*model.Request")).Return(nil).Once()
	deleted, err := svc.Delete(context.Background(), creatorID, model.RoleEmployee, requestID.String())
	assert.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
	assert.Equal(t, &creatorID, deleted.DeletedBy)

	adminID := uuid.New()
	requests.On("GetByID", mock.Anything, requestID).Return(load(), nil).Once()
	requests.On("Update", mock.Anything, mock.AnythingOfType("*model.Request")).Return(nil).Once()
	deleted, err = svc.Delete(context.Background(), adminID, model.RoleAdmin, requestID.String())
	assert.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
}
