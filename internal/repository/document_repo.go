package repository

import (
	"context"

	"hrms-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository defines data access for uploaded document metadata
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, category string) ([]model.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository returns a new instance of DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, category string) ([]model.Document, error) {
	query := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if category != "" {
		query = query.Where("file_type = ?", category)
	}
	var docs []model.Document
	err := query.Order("created_at DESC").Find(&docs).Error
	return docs, err
}
