package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PersonalDetail holds the extended personal record of one employee.
// One row per employee; free-form fields that vary by deployment live in
// Extra as JSON.
type PersonalDetail struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID        uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"employeeId"`
	Employee          *User          `gorm:"foreignKey:EmployeeID" json:"-"`
	DateOfBirth       *time.Time     `json:"dateOfBirth,omitempty"`
	Nationality       string         `gorm:"type:varchar(100)" json:"nationality,omitempty"`
	MaritalStatus     string         `gorm:"type:varchar(50)" json:"maritalStatus,omitempty"`
	PlaceOfBirth      string         `gorm:"type:varchar(255)" json:"placeOfBirth,omitempty"`
	ResidentialStatus string         `gorm:"type:varchar(100)" json:"residentialStatus,omitempty"`
	FatherName        string         `gorm:"type:varchar(255)" json:"fatherName,omitempty"`
	MotherName        string         `gorm:"type:varchar(255)" json:"motherName,omitempty"`
	SpouseName        string         `gorm:"type:varchar(255)" json:"spouseName,omitempty"`
	Height            string         `gorm:"type:varchar(20)" json:"height,omitempty"`
	Weight            string         `gorm:"type:varchar(20)" json:"weight,omitempty"`
	Extra             datatypes.JSON `json:"extra,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	CreatedBy         *uuid.UUID     `gorm:"type:uuid" json:"createdBy,omitempty"`
	UpdatedBy         *uuid.UUID     `gorm:"type:uuid" json:"updatedBy,omitempty"`
}
