package service

import (
	"context"
	"path"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
	"hrms-backend/internal/storage"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// --- DTOs ---

type UploadFileDTO struct {
	Name     string `json:"name" binding:"required"` // original client file name
	Data     string `json:"data" binding:"required"` // base64, optionally a data URL
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

type UploadDocumentsDTO struct {
	EmployeeID string          `json:"employeeId" binding:"required"`
	Category   string          `json:"category" binding:"required"`
	Files      []UploadFileDTO `json:"files" binding:"required,min=1"`
}

// DocumentView is a stored document with its public download URL resolved
type DocumentView struct {
	model.Document
	URL string `json:"url"`
}

// DocumentService stores uploaded employee documents and their metadata
type DocumentService interface {
	Upload(ctx context.Context, req UploadDocumentsDTO, uploadedBy uuid.UUID) ([]model.Document, error)
	ListByEmployee(ctx context.Context, employeeID, category string) ([]DocumentView, error)
}

type documentService struct {
	documents   repository.DocumentRepository
	users       repository.UserRepository
	store       BlobStore
	fileBaseURL string
	log         *logrus.Logger
}

// NewDocumentService returns a new instance of DocumentService
func NewDocumentService(
	documents repository.DocumentRepository,
	users repository.UserRepository,
	store BlobStore,
	fileBaseURL string,
	log *logrus.Logger,
) DocumentService {
	return &documentService{
		documents:   documents,
		users:       users,
		store:       store,
		fileBaseURL: fileBaseURL,
		log:         log,
	}
}

// Upload validates the category and target employee, then writes each file's
// blob and metadata row. A failed file aborts the batch; rows written before
// the failure stay.
func (s *documentService) Upload(ctx context.Context, req UploadDocumentsDTO, uploadedBy uuid.UUID) ([]model.Document, error) {
	if !model.IsValidDocumentCategory(req.Category) {
		return nil, apperrors.ErrInvalidDocumentCategory
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if _, err := s.users.GetByID(ctx, employeeID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	saved := make([]model.Document, 0, len(req.Files))
	for _, f := range req.Files {
		filePath := storage.DocumentFilePath(req.EmployeeID, req.Category, f.Name)
		if err := s.store.SaveBase64(filePath, f.Data); err != nil {
			s.log.WithError(err).WithField("fileName", f.Name).Warn("document blob write failed")
			return nil, err
		}

		doc := model.Document{
			EmployeeID:   employeeID,
			FileName:     path.Base(filePath),
			OriginalName: f.Name,
			FileType:     req.Category,
			FilePath:     filePath,
			FileSize:     f.Size,
			MimeType:     f.MimeType,
			UploadedBy:   &uploadedBy,
		}
		if err := s.documents.Create(ctx, &doc); err != nil {
			return nil, err
		}
		saved = append(saved, doc)
	}
	return saved, nil
}

// ListByEmployee returns document metadata with download URLs, optionally
// filtered to one category.
func (s *documentService) ListByEmployee(ctx context.Context, employeeID, category string) ([]DocumentView, error) {
	if category != "" && !model.IsValidDocumentCategory(category) {
		return nil, apperrors.ErrInvalidDocumentCategory
	}
	parsed, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	docs, err := s.documents.ListByEmployee(ctx, parsed, category)
	if err != nil {
		return nil, err
	}

	views := make([]DocumentView, 0, len(docs))
	for _, d := range docs {
		views = append(views, DocumentView{
			Document: d,
			URL:      s.fileBaseURL + "/" + d.FilePath,
		})
	}
	return views, nil
}
