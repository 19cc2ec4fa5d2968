package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LookupType is a configurable lookup-table category (e.g. "Leave").
// Codes auto-increment from 1 per table, assigned by the repository at
// creation under a per-table advisory lock.
type LookupType struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Code        int        `gorm:"uniqueIndex;not null" json:"code"`
	Description string     `gorm:"type:text" json:"description"`
	IsDeleted   bool       `gorm:"default:false;index" json:"isDeleted"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"createdBy,omitempty"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid" json:"updatedBy,omitempty"`
	DeletedBy   *uuid.UUID `gorm:"type:uuid" json:"-"`
	DeletedAt   *time.Time `json:"-"`
}

// OptionType is one selectable option inside lookup types (e.g. "Sick Leave").
// TypeCodes lists the LookupType codes the option belongs to. Request rows
// reference options by Code.
type OptionType struct {
	ID          uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code        int                      `gorm:"uniqueIndex;not null" json:"code"`
	Name        string                   `gorm:"type:varchar(255);not null" json:"name"`
	TypeCodes   datatypes.JSONSlice[int] `json:"typeCode"`
	Description string                   `gorm:"type:text" json:"description"`
	IsDeleted   bool                     `gorm:"default:false;index" json:"isDeleted"`
	CreatedAt   time.Time                `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                `gorm:"autoUpdateTime" json:"updatedAt"`
	CreatedBy   *uuid.UUID               `gorm:"type:uuid" json:"createdBy,omitempty"`
	UpdatedBy   *uuid.UUID               `gorm:"type:uuid" json:"updatedBy,omitempty"`
	DeletedBy   *uuid.UUID               `gorm:"type:uuid" json:"-"`
	DeletedAt   *time.Time               `json:"-"`
}

// HasTypeCode reports whether the option is attached to the given type code
func (o *OptionType) HasTypeCode(code int) bool {
	for _, c := range o.TypeCodes {
		if c == code {
			return true
		}
	}
	return false
}
