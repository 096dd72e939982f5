package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/pkg/validator"
)

type productionFixture struct {
	svc      ProductionService
	db       *gorm.DB
	owner    *model.User
	staff    *model.Staff
	clothing *model.Clothing
}

func setupProductionService(t *testing.T) productionFixture {
	t.Helper()
	db := setupTestDB(t)

	owner := &model.User{Username: "alice", PhoneNumber: "100"}
	require.NoError(t, owner.SetPassword("password"))
	require.NoError(t, db.Create(owner).Error)

	staff := &model.Staff{Name: "Worker A", PhoneNumber: "1", UserID: owner.ID}
	require.NoError(t, db.Create(staff).Error)

	boss := &model.Boss{Name: "Shop", PhoneNumber: "1", UserID: owner.ID}
	require.NoError(t, db.Create(boss).Error)

	clothing := &model.Clothing{Name: "Shirt", Price: 50, BossID: boss.ID}
	require.NoError(t, db.Create(clothing).Error)

	svc := NewProductionService(
		repository.NewProductionRepo(db),
		repository.NewStaffRepo(db),
		setupTestHub(),
	)
	return productionFixture{svc: svc, db: db, owner: owner, staff: staff, clothing: clothing}
}

func TestProductionService_CreateComputesSalaries(t *testing.T) {
	f := setupProductionService(t)

	production, err := f.svc.Create(ctx, f.owner.ID, CreateProductionParams{
		Description: strptr("week 12 batch"),
		StaffID:     f.staff.ID,
		Items: []CreateProductionItemParams{
			{UnitPrice: 10, Count: 3, ClothingID: f.clothing.ID},
			{UnitPrice: 5, Count: 2, ClothingID: f.clothing.ID},
		},
	})
	require.NoError(t, err)
	require.Len(t, production.Items, 2)
	assert.Equal(t, 30.0, production.Items[0].Salary)
	assert.Equal(t, 10.0, production.Items[1].Salary)
	assert.Equal(t, 40.0, production.TotalSalary)
	assert.False(t, production.Settled)

	// The computed figures are persisted, not just echoed.
	stored, err := f.svc.FindByID(ctx, f.owner.ID, production.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, stored.TotalSalary)
	assert.Len(t, stored.Items, 2)
}

func TestProductionService_CreateValidation(t *testing.T) {
	f := setupProductionService(t)

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.owner.ID, CreateProductionParams{
			StaffID: f.staff.ID,
		})
		require.Error(t, err)
		var verr *validator.ErrorResponse
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("rejects a negative unit price", func(t *testing.T) {
		_, err := f.svc.Create(ctx, f.owner.ID, CreateProductionParams{
			StaffID: f.staff.ID,
			Items:   []CreateProductionItemParams{{UnitPrice: -1, Count: 3, ClothingID: f.clothing.ID}},
		})
		require.Error(t, err)
		var verr *validator.ErrorResponse
		assert.ErrorAs(t, err, &verr)
	})
}

func TestProductionService_CreateRejectsForeignStaff(t *testing.T) {
	f := setupProductionService(t)

	other := &model.User{Username: "mallory", PhoneNumber: "200"}
	require.NoError(t, other.SetPassword("password"))
	require.NoError(t, f.db.Create(other).Error)
	foreignStaff := &model.Staff{Name: "Foreign", PhoneNumber: "1", UserID: other.ID}
	require.NoError(t, f.db.Create(foreignStaff).Error)

	_, err := f.svc.Create(ctx, f.owner.ID, CreateProductionParams{
		StaffID: foreignStaff.ID,
		Items:   []CreateProductionItemParams{{UnitPrice: 10, Count: 1, ClothingID: f.clothing.ID}},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, f.db.Model(&model.Production{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductionService_Settle(t *testing.T) {
	f := setupProductionService(t)

	production, err := f.svc.Create(ctx, f.owner.ID, CreateProductionParams{
		StaffID: f.staff.ID,
		Items:   []CreateProductionItemParams{{UnitPrice: 10, Count: 3, ClothingID: f.clothing.ID}},
	})
	require.NoError(t, err)

	settled, err := f.svc.Settle(ctx, f.owner.ID, production.ID)
	require.NoError(t, err)
	assert.True(t, settled.Settled)

	_, err = f.svc.Settle(ctx, f.owner.ID, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
