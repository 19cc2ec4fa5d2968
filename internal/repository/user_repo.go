package repository

import (
	"context"
	"time"

	"hrms-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRow is a User joined with its manager's display name and the date of
// birth from the personal-details table, for admin listings
type UserRow struct {
	model.User
	ManagerName *string    `json:"managerName,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
}

// UserRepository defines the interface for data access of User entities
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByEmailOrUsername(ctx context.Context, login string) (*model.User, error)
	List(ctx context.Context, page, limit int) ([]UserRow, int64, error)
	ListManagers(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "email = ? AND is_deleted = ?", email, false).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailOrUsername resolves a login identifier the way the login endpoint
// accepts it — either field matches
func (r *userRepository) GetByEmailOrUsername(ctx context.Context, login string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Where("email = ? OR username = ?", login, login).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, page, limit int) ([]UserRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	var rows []UserRow
	if err := r.db.WithContext(ctx).Table("users").
		Select("users.*, m.employee_name AS manager_name, pd.date_of_birth").
		Joins("LEFT JOIN users m ON m.id = users.manager_id").
		Joins("LEFT JOIN personal_details pd ON pd.employee_id = users.id").
		Where("users.is_deleted = ?", false).
		Order("users.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// ListManagers returns the active users that can be assigned as a manager
func (r *userRepository) ListManagers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("role IN ?", []string{model.RoleManager, model.RoleAdmin, model.RoleSuperAdmin}).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).Update("last_login_at", at).Error
}
