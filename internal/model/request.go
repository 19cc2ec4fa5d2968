package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request status enum constants
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// Request represents one leave/absence request addressed to the employee's
// manager at creation time. Status moves pending -> approved|rejected only;
// terminal states are frozen.
type Request struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"employeeId"`
	Employee        *User           `gorm:"foreignKey:EmployeeID" json:"-"`
	RequestTypeCode int             `gorm:"not null;index" json:"requestTypeCode"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	From            time.Time       `gorm:"not null" json:"from"`
	To              time.Time       `gorm:"not null" json:"to"`
	Days            decimal.Decimal `gorm:"type:numeric(6,2)" json:"days"`
	FileName        string          `gorm:"type:varchar(255)" json:"fileName,omitempty"`
	FilePath        string          `gorm:"type:varchar(512)" json:"filePath,omitempty"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reply           string          `gorm:"type:text" json:"reply"`
	ManagerID       *uuid.UUID      `gorm:"type:uuid;index" json:"managerId,omitempty"` // denormalized at creation
	Manager         *User           `gorm:"foreignKey:ManagerID" json:"-"`
	ResponseBy      *uuid.UUID      `gorm:"type:uuid" json:"responseBy,omitempty"`
	ResponseAt      *time.Time      `json:"responseAt,omitempty"`
	IsDeleted       bool            `gorm:"default:false;index" json:"isDeleted"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	CreatedBy       *uuid.UUID      `gorm:"type:uuid" json:"createdBy,omitempty"`
	UpdatedBy       *uuid.UUID      `gorm:"type:uuid" json:"updatedBy,omitempty"`
	DeletedBy       *uuid.UUID      `gorm:"type:uuid" json:"-"`
	DeletedAt       *time.Time      `json:"-"`
}

// LeaveDays returns the inclusive day count of a date range as a decimal,
// so half-day granularity stays representable in the column type.
func LeaveDays(from, to time.Time) decimal.Decimal {
	if to.Before(from) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(to.Sub(from).Hours() / 24).Add(decimal.NewFromInt(1))
}
