package service

import (
	"context"
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

type CreateTypeDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateTypeDTO struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateOptionDTO struct {
	Name        string `json:"name" binding:"required"`
	TypeCodes   []int  `json:"typeCode" binding:"required,min=1"`
	Description string `json:"description"`
}

type UpdateOptionDTO struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name"`
	TypeCodes   []int  `json:"typeCode"`
	Description string `json:"description"`
}

// MasterService manages the configurable lookup tables: type categories and
// the options that hang off them. Codes auto-increment per table and are
// never reused after a soft delete.
type MasterService interface {
	CreateType(ctx context.Context, req CreateTypeDTO, createdBy uuid.UUID) (*model.LookupType, error)
	ListTypes(ctx context.Context) ([]model.LookupType, error)
	UpdateType(ctx context.Context, req UpdateTypeDTO, updatedBy uuid.UUID) (*model.LookupType, error)
	DeleteType(ctx context.Context, id string, deletedBy uuid.UUID) error

	CreateOption(ctx context.Context, req CreateOptionDTO, createdBy uuid.UUID) (*model.OptionType, error)
	ListOptions(ctx context.Context, typeCode int) ([]model.OptionType, error)
	UpdateOption(ctx context.Context, req UpdateOptionDTO, updatedBy uuid.UUID) (*model.OptionType, error)
	DeleteOption(ctx context.Context, id string, deletedBy uuid.UUID) error
}

type masterService struct {
	master repository.MasterRepository
}

// NewMasterService returns a new instance of MasterService
func NewMasterService(master repository.MasterRepository) MasterService {
	return &masterService{master: master}
}

func (s *masterService) CreateType(ctx context.Context, req CreateTypeDTO, createdBy uuid.UUID) (*model.LookupType, error) {
	t := &model.LookupType{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   &createdBy,
		UpdatedBy:   &createdBy,
	}
	// The repository assigns Code under a lock so concurrent creates cannot
	// collide on the unique index
	if err := s.master.CreateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *masterService) ListTypes(ctx context.Context) ([]model.LookupType, error) {
	return s.master.ListTypes(ctx)
}

func (s *masterService) UpdateType(ctx context.Context, req UpdateTypeDTO, updatedBy uuid.UUID) (*model.LookupType, error) {
	t, err := s.getType(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		t.Name = req.Name
	}
	if req.Description != "" {
		t.Description = req.Description
	}
	t.UpdatedBy = &updatedBy
	if err := s.master.UpdateType(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *masterService) DeleteType(ctx context.Context, id string, deletedBy uuid.UUID) error {
	t, err := s.getType(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now()
	t.IsDeleted = true
	t.DeletedAt = &now
	t.DeletedBy = &deletedBy
	return s.master.UpdateType(ctx, t)
}

func (s *masterService) CreateOption(ctx context.Context, req CreateOptionDTO, createdBy uuid.UUID) (*model.OptionType, error) {
	o := &model.OptionType{
		Name:        req.Name,
		TypeCodes:   datatypes.NewJSONSlice(req.TypeCodes),
		Description: req.Description,
		CreatedBy:   &createdBy,
		UpdatedBy:   &createdBy,
	}
	if err := s.master.CreateOption(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOptions returns all live options, or only those attached to typeCode
// when it is non-zero. TypeCodes is a JSON column, so the filter runs here
// instead of in SQL.
func (s *masterService) ListOptions(ctx context.Context, typeCode int) ([]model.OptionType, error) {
	options, err := s.master.ListOptions(ctx)
	if err != nil {
		return nil, err
	}
	if typeCode == 0 {
		return options, nil
	}
	filtered := make([]model.OptionType, 0, len(options))
	for _, o := range options {
		if o.HasTypeCode(typeCode) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

func (s *masterService) UpdateOption(ctx context.Context, req UpdateOptionDTO, updatedBy uuid.UUID) (*model.OptionType, error) {
	o, err := s.getOption(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		o.Name = req.Name
	}
	if len(req.TypeCodes) > 0 {
		o.TypeCodes = datatypes.NewJSONSlice(req.TypeCodes)
	}
	if req.Description != "" {
		o.Description = req.Description
	}
	o.UpdatedBy = &updatedBy
	if err := s.master.UpdateOption(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *masterService) DeleteOption(ctx context.Context, id string, deletedBy uuid.UUID) error {
	o, err := s.getOption(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now()
	o.IsDeleted = true
	o.DeletedAt = &now
	o.DeletedBy = &deletedBy
	return s.master.UpdateOption(ctx, o)
}

func (s *masterService) getType(ctx context.Context, id string) (*model.LookupType, error) {
	typeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrRecordMissing
	}
	t, err := s.master.GetTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordMissing
		}
		return nil, err
	}
	return t, nil
}

func (s *masterService) getOption(ctx context.Context, id string) (*model.OptionType, error) {
	optionID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.ErrRecordMissing
	}
	o, err := s.master.GetOptionByID(ctx, optionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordMissing
		}
		return nil, err
	}
	return o, nil
}
