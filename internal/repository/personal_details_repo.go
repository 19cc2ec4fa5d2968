package repository

import (
	"context"

	"hrms-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonalDetailsRepository defines data access for employee personal records
type PersonalDetailsRepository interface {
	Create(ctx context.Context, details *model.PersonalDetail) error
	GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.PersonalDetail, error)
	Update(ctx context.Context, details *model.PersonalDetail) error
}

type personalDetailsRepository struct {
	db *gorm.DB
}

// NewPersonalDetailsRepository returns a new instance of PersonalDetailsRepository
func NewPersonalDetailsRepository(db *gorm.DB) PersonalDetailsRepository {
	return &personalDetailsRepository{db: db}
}

func (r *personalDetailsRepository) Create(ctx context.Context, details *model.PersonalDetail) error {
	return r.db.WithContext(ctx).Create(details).Error
}

func (r *personalDetailsRepository) GetByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.PersonalDetail, error) {
	var details model.PersonalDetail
	if err := r.db.WithContext(ctx).First(&details, "employee_id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *personalDetailsRepository) Update(ctx context.Context, details *model.PersonalDetail) error {
	return r.db.WithContext(ctx).Save(details).Error
}
