package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- DTOs ---

// PersonalDetailsDTO is shared by create and update; EmployeeID comes from
// the URL path, not the body.
type PersonalDetailsDTO struct {
	EmployeeID        string         `json:"-"`
	DateOfBirth       *time.Time     `json:"dateOfBirth"`
	Nationality       string         `json:"nationality"`
	MaritalStatus     string         `json:"maritalStatus"`
	PlaceOfBirth      string         `json:"placeOfBirth"`
	ResidentialStatus string         `json:"residentialStatus"`
	FatherName        string         `json:"fatherName"`
	MotherName        string         `json:"motherName"`
	SpouseName        string         `json:"spouseName"`
	Height            string         `json:"height"`
	Weight            string         `json:"weight"`
	Extra             map[string]any `json:"extra"`
}

// PersonalDetailsService manages the one-per-employee extended record
type PersonalDetailsService interface {
	Create(ctx context.Context, req PersonalDetailsDTO, createdBy uuid.UUID) (*model.PersonalDetail, error)
	GetByEmployee(ctx context.Context, employeeID string) (*model.PersonalDetail, error)
	Update(ctx context.Context, req PersonalDetailsDTO, updatedBy uuid.UUID) (*model.PersonalDetail, error)
}

type personalDetailsService struct {
	details repository.PersonalDetailsRepository
	users   repository.UserRepository
}

// NewPersonalDetailsService returns a new instance of PersonalDetailsService
func NewPersonalDetailsService(details repository.PersonalDetailsRepository, users repository.UserRepository) PersonalDetailsService {
	return &personalDetailsService{details: details, users: users}
}

func (s *personalDetailsService) Create(ctx context.Context, req PersonalDetailsDTO, createdBy uuid.UUID) (*model.PersonalDetail, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, employeeID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.details.GetByEmployee(ctx, employeeID); err == nil {
		return nil, apperrors.ErrDetailsExist
	}

	details := &model.PersonalDetail{
		EmployeeID:        employeeID,
		DateOfBirth:       req.DateOfBirth,
		Nationality:       req.Nationality,
		MaritalStatus:     req.MaritalStatus,
		PlaceOfBirth:      req.PlaceOfBirth,
		ResidentialStatus: req.ResidentialStatus,
		FatherName:        req.FatherName,
		MotherName:        req.MotherName,
		SpouseName:        req.SpouseName,
		Height:            req.Height,
		Weight:            req.Weight,
		CreatedBy:         &createdBy,
		UpdatedBy:         &createdBy,
	}
	if extra, err := marshalExtra(req.Extra); err == nil {
		details.Extra = extra
	}

	if err := s.details.Create(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *personalDetailsService) GetByEmployee(ctx context.Context, employeeID string) (*model.PersonalDetail, error) {
	parsed, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperrors.ErrRecordMissing
	}
	details, err := s.details.GetByEmployee(ctx, parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordMissing
		}
		return nil, err
	}
	return details, nil
}

// Update is a partial merge: empty strings and nil fields leave the stored
// values alone.
func (s *personalDetailsService) Update(ctx context.Context, req PersonalDetailsDTO, updatedBy uuid.UUID) (*model.PersonalDetail, error) {
	details, err := s.GetByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	if req.DateOfBirth != nil {
		details.DateOfBirth = req.DateOfBirth
	}
	if req.Nationality != "" {
		details.Nationality = req.Nationality
	}
	if req.MaritalStatus != "" {
		details.MaritalStatus = req.MaritalStatus
	}
	if req.PlaceOfBirth != "" {
		details.PlaceOfBirth = req.PlaceOfBirth
	}
	if req.ResidentialStatus != "" {
		details.ResidentialStatus = req.ResidentialStatus
	}
	if req.FatherName != "" {
		details.FatherName = req.FatherName
	}
	if req.MotherName != "" {
		details.MotherName = req.MotherName
	}
	if req.SpouseName != "" {
		details.SpouseName = req.SpouseName
	}
	if req.Height != "" {
		details.Height = req.Height
	}
	if req.Weight != "" {
		details.Weight = req.Weight
	}
	if len(req.Extra) > 0 {
		if extra, err := marshalExtra(req.Extra); err == nil {
			details.Extra = extra
		}
	}
	details.UpdatedBy = &updatedBy

	if err := s.details.Update(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func marshalExtra(extra map[string]any) (datatypes.JSON, error) {
	if len(extra) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
