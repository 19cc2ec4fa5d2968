package service

import (
	"context"
	"errors"
	"time"

	"hrms-backend/internal/mailer"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/storage"
	"hrms-backend/internal/websocket"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateRequestDTO struct {
	RequestTypeCode int       `json:"requestTypeCode" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	From            time.Time `json:"from" binding:"required"`
	To              time.Time `json:"to" binding:"required"`
	File            string    `json:"file"`     // base64, optionally a data URL
	FileName        string    `json:"fileName"` // original client file name
}

type RespondRequestDTO struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Reply  string `json:"reply"`
}

type UpdateRequestDTO struct {
	ID          string     `json:"id" binding:"required"`
	Description string     `json:"description"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to"`
	File        string     `json:"file"`
	FileName    string     `json:"fileName"`
}

// BlobStore is the slice of the file store the workflow needs
type BlobStore interface {
	SaveBase64(relPath, data string) error
}

// Broadcaster pushes workflow events to connected clients
type Broadcaster interface {
	PublishRequestEvent(event websocket.RequestEvent)
}

// RequestService is the approval workflow engine: request creation, role- and
// hierarchy-scoped listing, manager response, creator edits and soft deletes.
type RequestService interface {
	Create(ctx context.Context, requesterID uuid.UUID, req CreateRequestDTO) (*model.Request, error)
	ListForRequester(ctx context.Context, requesterID uuid.UUID) ([]repository.RequestRow, error)
	ListForApprover(ctx context.Context, approverID uuid.UUID, approverRole string) ([]repository.RequestRow, error)
	Respond(ctx context.Context, actingID uuid.UUID, actingRole string, req RespondRequestDTO) (*model.Request, error)
	Update(ctx context.Context, actingID uuid.UUID, req UpdateRequestDTO) (*model.Request, error)
	Delete(ctx context.Context, actingID uuid.UUID, actingRole string, requestID string) (*model.Request, error)
}

type requestService struct {
	requests repository.RequestRepository
	users    repository.UserRepository
	master   repository.MasterRepository
	store    BlobStore
	mail     mailer.Mailer
	hub      Broadcaster
	log      *logrus.Logger
}

// NewRequestService returns a new instance of RequestService
func NewRequestService(
	requests repository.RequestRepository,
	users repository.UserRepository,
	master repository.MasterRepository,
	store BlobStore,
	mail mailer.Mailer,
	hub Broadcaster,
	log *logrus.Logger,
) RequestService {
	return &requestService{
		requests: requests,
		users:    users,
		master:   master,
		store:    store,
		mail:     mail,
		hub:      hub,
		log:      log,
	}
}

// Create persists a new pending request addressed to the requester's current
// manager and notifies the manager out of band. Notification failures never
// fail the creation.
func (s *requestService) Create(ctx context.Context, requesterID uuid.UUID, req CreateRequestDTO) (*model.Request, error) {
	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if requester.ManagerID == nil {
		return nil, apperrors.ErrManagerNotAssigned
	}
	manager, err := s.users.GetByID(ctx, *requester.ManagerID)
	if err != nil {
		// The manager field is a weak reference; a dangling one means no
		// approver can be notified, so refuse the request.
		return nil, apperrors.ErrManagerNotAssigned
	}

	typeName := s.resolveTypeName(ctx, req.RequestTypeCode)

	var filePath string
	if req.File != "" && req.FileName != "" {
		filePath = storage.RequestFilePath(requesterID.String(), req.FileName)
		if err := s.store.SaveBase64(filePath, req.File); err != nil {
			return nil, err
		}
	}

	request := &model.Request{
		EmployeeID:      requesterID,
		RequestTypeCode: req.RequestTypeCode,
		Description:     req.Description,
		From:            req.From,
		To:              req.To,
		Days:            model.LeaveDays(req.From, req.To),
		FileName:        req.FileName,
		FilePath:        filePath,
		Status:          model.RequestPending,
		ManagerID:       requester.ManagerID,
		CreatedBy:       &requesterID,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	// Fire-and-forget: neither email latency nor failure may propagate
	go s.notifyManager(manager, requester, request, typeName)

	return request, nil
}

func (s *requestService) notifyManager(manager, requester *model.User, request *model.Request, typeName string) {
	if err := s.mail.SendRequestNotification(
		manager.Email, manager.EmployeeName,
		requester.EmployeeName, requester.Email,
		typeName, request.Description, request.From, request.To,
	); err != nil {
		s.log.WithError(err).WithField("requestId", request.ID).Warn("request notification email failed")
	}
	s.hub.PublishRequestEvent(websocket.RequestEvent{
		Event:      websocket.EventRequestCreated,
		RequestID:  request.ID.String(),
		EmployeeID: request.EmployeeID.String(),
		ManagerID:  manager.ID.String(),
		Status:     request.Status,
	})
}

func (s *requestService) resolveTypeName(ctx context.Context, code int) string {
	option, err := s.master.GetOptionByCode(ctx, code)
	if err != nil {
		s.log.WithField("requestTypeCode", code).Warn("request type code has no option entry")
		return "Request"
	}
	return option.Name
}

func (s *requestService) ListForRequester(ctx context.Context, requesterID uuid.UUID) ([]repository.RequestRow, error) {
	return s.requests.ListByEmployee(ctx, requesterID)
}

// ListForApprover returns every request for admins and only direct reports'
// requests for anyone else. Employees without reports simply see an empty
// list — the scoping query cannot match them.
func (s *requestService) ListForApprover(ctx context.Context, approverID uuid.UUID, approverRole string) ([]repository.RequestRow, error) {
	if model.IsAdminRole(approverRole) {
		return s.requests.ListAll(ctx)
	}
	return s.requests.ListByManager(ctx, approverID)
}

// Respond applies an approve/reject decision. Managers may only act on
// requests whose requester currently reports to them; admins bypass the
// hierarchy check. Finalized requests are frozen.
func (s *requestService) Respond(ctx context.Context, actingID uuid.UUID, actingRole string, req RespondRequestDTO) (*model.Request, error) {
	request, err := s.getLive(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if request.Status != model.RequestPending {
		return nil, apperrors.ErrRequestFinalized
	}

	if !model.IsAdminRole(actingRole) {
		employee, err := s.users.GetByID(ctx, request.EmployeeID)
		if err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		if employee.ManagerID == nil || *employee.ManagerID != actingID {
			return nil, apperrors.ErrNotAuthorized
		}
	}

	now := time.Now()
	request.Status = req.Status
	request.Reply = req.Reply
	request.ResponseBy = &actingID
	request.ResponseAt = &now
	request.UpdatedBy = &actingID

	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}

	event := websocket.RequestEvent{
		Event:      websocket.EventRequestResponded,
		RequestID:  request.ID.String(),
		EmployeeID: request.EmployeeID.String(),
		Status:     request.Status,
	}
	if request.ManagerID != nil {
		event.ManagerID = request.ManagerID.String()
	}
	s.hub.PublishRequestEvent(event)

	return request, nil
}

// Update lets the original creator edit content fields. A replacement file
// writes a new blob; the old one is intentionally left in place.
func (s *requestService) Update(ctx context.Context, actingID uuid.UUID, req UpdateRequestDTO) (*model.Request, error) {
	request, err := s.getLive(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if request.EmployeeID != actingID {
		return nil, apperrors.ErrNotAuthorized
	}

	if req.Description != "" {
		request.Description = req.Description
	}
	if req.From != nil {
		request.From = *req.From
	}
	if req.To != nil {
		request.To = *req.To
	}
	request.Days = model.LeaveDays(request.From, request.To)

	if req.File != "" && req.FileName != "" {
		filePath := storage.RequestFilePath(actingID.String(), req.FileName)
		if err := s.store.SaveBase64(filePath, req.File); err != nil {
			return nil, err
		}
		request.FileName = req.FileName
		request.FilePath = filePath
	}

	request.UpdatedBy = &actingID
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// Delete soft-deletes a request. Allowed for the creator and for admins.
func (s *requestService) Delete(ctx context.Context, actingID uuid.UUID, actingRole string, requestID string) (*model.Request, error) {
	request, err := s.getLive(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.EmployeeID != actingID && !model.IsAdminRole(actingRole) {
		return nil, apperrors.ErrNotAuthorized
	}

	now := time.Now()
	request.IsDeleted = true
	request.DeletedAt = &now
	request.DeletedBy = &actingID

	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// getLive resolves a request id to a non-deleted row
func (s *requestService) getLive(ctx context.Context, id string) (*model.Request, error) {
	requestID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrRequestNotFound
	}
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	if request.IsDeleted {
		return nil, apperrors.ErrRequestNotFound
	}
	return request, nil
}
