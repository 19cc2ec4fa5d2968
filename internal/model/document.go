package model

import (
	"time"

	"github.com/google/uuid"
)

// Document categories accepted by the upload endpoint
var DocumentCategories = []string{"aadhaar", "profile", "identity", "address", "education", "experience", "other"}

// IsValidDocumentCategory reports whether category is an accepted document type
func IsValidDocumentCategory(category string) bool {
	for _, c := range DocumentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Document records one uploaded file belonging to an employee. The blob
// itself lives in the file store; FilePath is relative to the upload root.
type Document struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"employeeId"`
	Employee     *User      `gorm:"foreignKey:EmployeeID" json:"-"`
	FileName     string     `gorm:"type:varchar(255);not null" json:"fileName"`
	OriginalName string     `gorm:"type:varchar(255)" json:"originalName"`
	FileType     string     `gorm:"type:varchar(50);not null;index" json:"fileType"` // category
	FilePath     string     `gorm:"type:varchar(512);not null" json:"filePath"`
	FileSize     int64      `json:"fileSize"`
	MimeType     string     `gorm:"type:varchar(100)" json:"mimeType"`
	UploadedBy   *uuid.UUID `gorm:"type:uuid" json:"uploadedBy,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}
