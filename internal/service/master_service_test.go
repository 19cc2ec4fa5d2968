package service

import (
	"context"
	"testing"

	"hrms-backend/internal/model"
	"hrms-backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func TestCreateTypeCodeAssignedByStore(t *testing.T) {
	master := new(MockMasterRepository)
	svc := NewMasterService(master)

	creatorID := uuid.New()
	master.On("CreateType", mock.Anything, mock.AnythingOfType("*model.LookupType")).Run(func(args mock.Arguments) {
		created := args.Get(1).(*model.LookupType)
		// The service must leave the code to the store's locked assignment
		assert.Zero(t, created.Code)
		created.Code = 4
	}).Return(nil)

	created, err := svc.CreateType(context.Background(), CreateTypeDTO{Name: "Leave"}, creatorID)
	assert.NoError(t, err)
	assert.Equal(t, 4, created.Code)
	assert.Equal(t, "Leave", created.Name)
	assert.Equal(t, &creatorID, created.CreatedBy)
}

func TestCreateOptionCodeAssignedByStore(t *testing.T) {
	master := new(MockMasterRepository)
	svc := NewMasterService(master)

	master.On("CreateOption", mock.Anything, mock.AnythingOfType("*model.OptionType")).Run(func(args mock.Arguments) {
		created := args.Get(1).(*model.OptionType)
		assert.Zero(t, created.Code)
		created.Code = 7
	}).Return(nil)

	created, err := svc.CreateOption(context.Background(), CreateOptionDTO{
		Name:      "Sick Leave",
		TypeCodes: []int{1, 2},
	}, uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, 7, created.Code)
	assert.True(t, created.HasTypeCode(1))
	assert.True(t, created.HasTypeCode(2))
	assert.False(t, created.HasTypeCode(3))
}

func TestListOptionsFiltersByTypeCode(t *testing.T) {
	master := new(MockMasterRepository)
	svc := NewMasterService(master)

	master.On("ListOptions", mock.Anything).Return([]model.OptionType{
		{Code: 1, Name: "Sick Leave", TypeCodes: datatypes.NewJSONSlice([]int{1})},
		{Code: 2, Name: "Annual Leave", TypeCodes: datatypes.NewJSONSlice([]int{1, 2})},
		{Code: 3, Name: "Equipment", TypeCodes: datatypes.NewJSONSlice([]int{3})},
	}, nil)

	all, err := svc.ListOptions(context.Background(), 0)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	leave, err := svc.ListOptions(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, leave, 2)

	equipment, err := svc.ListOptions(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, equipment, 1)
	assert.Equal(t, "Equipment", equipment[0].Name)
}

func TestDeleteTypeSoftDeletes(t *testing.T) {
	master := new(MockMasterRepository)
	svc := NewMasterService(master)

	typeID := uuid.New()
	deleterID := uuid.New()
	master.On("GetTypeByID", mock.Anything, typeID).Return(&model.LookupType{ID: typeID, Code: 2}, nil)

	var updated *model.LookupType
	master.On("UpdateType", mock.Anything, mock.AnythingOfType("*model.LookupType")).Run(func(args mock.Arguments) {
		updated = args.Get(1).(*model.LookupType)
	}).Return(nil)

	err := svc.DeleteType(context.Background(), typeID.String(), deleterID)
	assert.NoError(t, err)
	assert.True(t, updated.IsDeleted)
	assert.Equal(t, &deleterID, updated.DeletedBy)
	assert.NotNil(t, updated.DeletedAt)
}

func TestUpdateOptionBadID(t *testing.T) {
	master := new(MockMasterRepository)
	svc := NewMasterService(master)

	_, err := svc.UpdateOption(context.Background(), UpdateOptionDTO{ID: "garbage"}, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrRecordMissing)
}
