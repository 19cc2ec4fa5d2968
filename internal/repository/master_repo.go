package repository

import (
	"context"

	"hrms-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterRepository defines data access for the lookup tables (types and
// option types). Creates assign the row's code themselves: codes are
// max(code)+1 per table and the assignment must be serialized.
type MasterRepository interface {
	CreateType(ctx context.Context, t *model.LookupType) error
	ListTypes(ctx context.Context) ([]model.LookupType, error)
	GetTypeByID(ctx context.Context, id uuid.UUID) (*model.LookupType, error)
	UpdateType(ctx context.Context, t *model.LookupType) error

	CreateOption(ctx context.Context, o *model.OptionType) error
	ListOptions(ctx context.Context) ([]model.OptionType, error)
	GetOptionByID(ctx context.Context, id uuid.UUID) (*model.OptionType, error)
	GetOptionByCode(ctx context.Context, code int) (*model.OptionType, error)
	UpdateOption(ctx context.Context, o *model.OptionType) error
}

// Advisory lock keys serializing code assignment per table
const (
	typeCodeLockKey   = "lookup_types.code"
	optionCodeLockKey = "option_types.code"
)

type masterRepository struct {
	db *gorm.DB
}

// NewMasterRepository returns a new instance of MasterRepository
func NewMasterRepository(db *gorm.DB) MasterRepository {
	return &masterRepository{db: db}
}

// CreateType assigns the next free code and inserts in one transaction. The
// advisory lock prevents two concurrent creates from reading the same max and
// colliding on the unique code index.
func (r *masterRepository) CreateType(ctx context.Context, t *model.LookupType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", typeCodeLockKey).Error; err != nil {
			return err
		}
		var max int
		if err := tx.Model(&model.LookupType{}).
			Select("COALESCE(MAX(code), 0)").Scan(&max).Error; err != nil {
			return err
		}
		t.Code = max + 1
		return tx.Create(t).Error
	})
}

func (r *masterRepository) ListTypes(ctx context.Context) ([]model.LookupType, error) {
	var types []model.LookupType
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("code").
		Find(&types).Error
	return types, err
}

func (r *masterRepository) GetTypeByID(ctx context.Context, id uuid.UUID) (*model.LookupType, error) {
	var t model.LookupType
	if err := r.db.WithContext(ctx).First(&t, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *masterRepository) UpdateType(ctx context.Context, t *model.LookupType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// CreateOption assigns the next free code and inserts in one transaction,
// under the same advisory-lock discipline as CreateType
func (r *masterRepository) CreateOption(ctx context.Context, o *model.OptionType) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", optionCodeLockKey).Error; err != nil {
			return err
		}
		var max int
		if err := tx.Model(&model.OptionType{}).
			Select("COALESCE(MAX(code), 0)").Scan(&max).Error; err != nil {
			return err
		}
		o.Code = max + 1
		return tx.Create(o).Error
	})
}

func (r *masterRepository) ListOptions(ctx context.Context) ([]model.OptionType, error) {
	var options []model.OptionType
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("code").
		Find(&options).Error
	return options, err
}

func (r *masterRepository) GetOptionByID(ctx context.Context, id uuid.UUID) (*model.OptionType, error) {
	var o model.OptionType
	if err := r.db.WithContext(ctx).First(&o, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *masterRepository) GetOptionByCode(ctx context.Context, code int) (*model.OptionType, error) {
	var o model.OptionType
	if err := r.db.WithContext(ctx).First(&o, "code = ? AND is_deleted = ?", code, false).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *masterRepository) UpdateOption(ctx context.Context, o *model.OptionType) error {
	return r.db.WithContext(ctx).Save(o).Error
}
