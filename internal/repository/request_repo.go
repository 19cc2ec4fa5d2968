package repository

import (
	"context"

	"hrms-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestRow is a Request enriched with the resolved option-type display name
// and, for approver listings, the requester's display fields
type RequestRow struct {
	model.Request
	RequestTypeName *string `json:"requestTypeName,omitempty"`
	EmployeeName    *string `json:"employeeName,omitempty"`
	EmployeeEmail   *string `json:"employeeEmail,omitempty"`
}

// RequestRepository defines the interface for data access of leave/absence
// requests. The approver-scoped listing joins users on the requester's
// manager column so hierarchy is always read fresh from the store of record.
type RequestRepository interface {
	Create(ctx context.Context, request *model.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]RequestRow, error)
	ListAll(ctx context.Context) ([]RequestRow, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]RequestRow, error)
	Update(ctx context.Context, request *model.Request) error
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository returns a new instance of RequestRepository
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *model.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	var request model.Request
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]RequestRow, error) {
	var rows []RequestRow
	err := r.db.WithContext(ctx).Table("requests").
		Select("requests.*, ot.name AS request_type_name").
		Joins("LEFT JOIN option_types ot ON ot.code = requests.request_type_code").
		Where("requests.employee_id = ? AND requests.is_deleted = ?", employeeID, false).
		Order("requests.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *requestRepository) ListAll(ctx context.Context) ([]RequestRow, error) {
	var rows []RequestRow
	err := r.db.WithContext(ctx).Table("requests").
		Select("requests.*, ot.name AS request_type_name, u.employee_name, u.email AS employee_email").
		Joins("LEFT JOIN option_types ot ON ot.code = requests.request_type_code").
		Joins("LEFT JOIN users u ON u.id = requests.employee_id").
		Where("requests.is_deleted = ?", false).
		Order("requests.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListByManager returns the non-deleted requests of the manager's direct
// reports — scoped by the requester's current manager field, not the
// denormalized manager_id captured at creation
func (r *requestRepository) ListByManager(ctx context.Context, managerID uuid.UUID) ([]RequestRow, error) {
	var rows []RequestRow
	err := r.db.WithContext(ctx).Table("requests").
		Select("requests.*, ot.name AS request_type_name, u.employee_name, u.email AS employee_email").
		Joins("LEFT JOIN option_types ot ON ot.code = requests.request_type_code").
		Joins("INNER JOIN users u ON u.id = requests.employee_id").
		Where("u.manager_id = ? AND requests.is_deleted = ?", managerID, false).
		Order("requests.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *requestRepository) Update(ctx context.Context, request *model.Request) error {
	return r.db.WithContext(ctx).Save(request).Error
}
