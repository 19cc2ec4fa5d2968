package model

import (
	"time"

	"github.com/google/uuid"
)

// Role enum constants. Any value outside this set is denied by the
// authorization middleware.
const (
	RoleEmployee   = "employee"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// IsValidRole reports whether role is one of the recognized role constants
func IsValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdminRole reports whether role bypasses ownership and hierarchy checks
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// User represents the central employee/identity entity. Rows are never
// hard-deleted — IsDeleted plus DeletedAt/DeletedBy implement the soft delete
// so admin listings can still surface the flag.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"userName"`
	EmployeeName   string     `gorm:"type:varchar(255);not null" json:"employeeName"`
	EmployeeNumber string     `gorm:"type:varchar(50);not null" json:"employeeNumber"`
	DateOfJoining  time.Time  `gorm:"not null" json:"dateOfJoining"`
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone          string     `gorm:"type:varchar(20);not null" json:"phone"`
	Position       string     `gorm:"type:varchar(100);not null" json:"position"`
	Department     string     `gorm:"type:varchar(100);not null" json:"department"`
	Branch         string     `gorm:"type:varchar(100)" json:"branch,omitempty"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index" json:"manager,omitempty"`
	Manager        *User      `gorm:"foreignKey:ManagerID" json:"-"`
	Role           string     `gorm:"type:varchar(50);not null" json:"role"`
	Password       string     `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	IsVerified     bool       `gorm:"default:false" json:"isVerified"`
	IsTempPassword bool       `gorm:"default:true" json:"isTemPassword"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	IsDeleted      bool       `gorm:"default:false;index" json:"isDeleted"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid" json:"createdBy,omitempty"`
	UpdatedBy      *uuid.UUID `gorm:"type:uuid" json:"updatedBy,omitempty"`
	DeletedBy      *uuid.UUID `gorm:"type:uuid" json:"-"`
	DeletedAt      *time.Time `json:"-"`
}
