package service

import (
	"context"
	"errors"
	"time"

	"hrms-backend/internal/mailer"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/pkg/apperrors"
	"hrms-backend/pkg/username"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- DTOs ---

type CreateEmployeeDTO struct {
	EmployeeName   string     `json:"employeeName" binding:"required"`
	EmployeeNumber string     `json:"employeeNumber" binding:"required"`
	DateOfJoining  time.Time  `json:"dateOfJoining" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Phone          string     `json:"phone" binding:"required"`
	Position       string     `json:"position" binding:"required"`
	Department     string     `json:"department" binding:"required"`
	Branch         string     `json:"branch"`
	Role           string     `json:"role" binding:"required"`
	Manager        string     `json:"manager"` // user id of the manager, optional
	EndDate        *time.Time `json:"endDate"`
}

type UpdateEmployeeDTO struct {
	EmployeeName string     `json:"employeeName"`
	Phone        string     `json:"phone"`
	Position     string     `json:"position"`
	Department   string     `json:"department"`
	Branch       string     `json:"branch"`
	Role         string     `json:"role"`
	Manager      string     `json:"manager"`
	IsActive     *bool      `json:"isActive"`
	EndDate      *time.Time `json:"endDate"`
}

// ManagerOption is the slim shape for manager-assignment dropdowns
type ManagerOption struct {
	ID           uuid.UUID `json:"id"`
	EmployeeName string    `json:"employeeName"`
}

// CreatedEmployee is returned from CreateEmployee; the temporary password is
// only ever sent by email, never in the response body.
type CreatedEmployee struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"userName"`
	EmployeeName   string    `json:"employeeName"`
	EmployeeNumber string    `json:"employeeNumber"`
	Email          string    `json:"email"`
	Position       string    `json:"position"`
	Role           string    `json:"role"`
}

// UserService covers the admin-side employee account operations
type UserService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeDTO, createdBy uuid.UUID) (*CreatedEmployee, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeDTO, updatedBy uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]repository.UserRow, int64, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListManagers(ctx context.Context) ([]ManagerOption, error)
}

type userService struct {
	users           repository.UserRepository
	mail            mailer.Mailer
	frontendBaseURL string
	log             *logrus.Logger
}

// NewUserService returns a new instance of UserService
func NewUserService(users repository.UserRepository, mail mailer.Mailer, frontendBaseURL string, log *logrus.Logger) UserService {
	return &userService{users: users, mail: mail, frontendBaseURL: frontendBaseURL, log: log}
}

// CreateEmployee provisions an account with a generated username and a
// temporary password, emailed out of band. The account stays flagged as
// temporary-password until the employee rotates it.
func (s *userService) CreateEmployee(ctx context.Context, req CreateEmployeeDTO, createdBy uuid.UUID) (*CreatedEmployee, error) {
	if !model.IsValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.ErrEmailExists
	}

	var managerID *uuid.UUID
	if req.Manager != "" {
		parsed, err := uuid.Parse(req.Manager)
		if err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		// The manager column is a weak reference, so existence is checked
		// here rather than by the database
		if _, err := s.users.GetByID(ctx, parsed); err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		managerID = &parsed
	}

	userName := username.Generate(req.EmployeeName, req.EmployeeNumber)
	tempPassword := username.TempPassword(10)

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       userName,
		EmployeeName:   req.EmployeeName,
		EmployeeNumber: req.EmployeeNumber,
		DateOfJoining:  req.DateOfJoining,
		Email:          req.Email,
		Phone:          req.Phone,
		Position:       req.Position,
		Department:     req.Department,
		Branch:         req.Branch,
		ManagerID:      managerID,
		Role:           req.Role,
		Password:       string(hashed),
		IsTempPassword: true,
		IsActive:       true,
		EndDate:        req.EndDate,
		CreatedBy:      &createdBy,
		UpdatedBy:      &createdBy,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	resetLink := s.frontendBaseURL + "/login"
	go func() {
		if err := s.mail.SendWelcome(user.Email, user.EmployeeName, user.Email, tempPassword, resetLink); err != nil {
			s.log.WithError(err).WithField("userId", user.ID).Warn("welcome email failed")
		}
	}()

	return &CreatedEmployee{
		ID:             user.ID,
		Username:       user.Username,
		EmployeeName:   user.EmployeeName,
		EmployeeNumber: user.EmployeeNumber,
		Email:          user.Email,
		Position:       user.Position,
		Role:           user.Role,
	}, nil
}

func (s *userService) UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeDTO, updatedBy uuid.UUID) (*model.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if req.Role != "" {
		if !model.IsValidRole(req.Role) {
			return nil, apperrors.ErrInvalidRole
		}
		user.Role = req.Role
	}
	if req.Manager != "" {
		parsed, err := uuid.Parse(req.Manager)
		if err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		if _, err := s.users.GetByID(ctx, parsed); err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		user.ManagerID = &parsed
	}
	if req.EmployeeName != "" {
		user.EmployeeName = req.EmployeeName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Position != "" {
		user.Position = req.Position
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Branch != "" {
		user.Branch = req.Branch
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.EndDate != nil {
		user.EndDate = req.EndDate
	}
	user.UpdatedBy = &updatedBy

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page, limit int) ([]repository.UserRow, int64, error) {
	return s.users.List(ctx, page, limit)
}

func (s *userService) GetUser(ctx context.Context, id string) (*model.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListManagers(ctx context.Context) ([]ManagerOption, error) {
	managers, err := s.users.ListManagers(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]ManagerOption, 0, len(managers))
	for _, m := range managers {
		options = append(options, ManagerOption{ID: m.ID, EmployeeName: m.EmployeeName})
	}
	return options, nil
}
