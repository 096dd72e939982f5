package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

func TestProcurementRepo_CreateWithItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProcurementRepo(db)
	owner := createTestUser(t, db, "100")
	boss := createTestBoss(t, db, owner.ID, "Shop")
	shirt := createTestClothing(t, db, boss.ID, "Shirt", 50)
	pants := createTestClothing(t, db, boss.ID, "Pants", 80)

	procurement := &model.Procurement{
		Description: strptr("spring intake"),
		UserID:      owner.ID,
		Items: []model.ProcurementItem{
			{Amount: 10, ClothingID: shirt.ID},
			{Amount: 4, ClothingID: pants.ID},
		},
	}
	require.NoError(t, repo.Create(ctx, procurement))
	assert.NotZero(t, procurement.ID)

	found, err := repo.FindByID(ctx, owner.ID, procurement.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, procurement.ID, found.Items[0].ProcurementID)
}

func TestProcurementRepo_CreateRollsBackOnBadItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProcurementRepo(db)
	owner := createTestUser(t, db, "100")
	boss := createTestBoss(t, db, owner.ID, "Shop")
	shirt := createTestClothing(t, db, boss.ID, "Shirt", 50)

	procurement := &model.Procurement{
		UserID: owner.ID,
		Items: []model.ProcurementItem{
			{Amount: 10, ClothingID: shirt.ID},
			{Amount: 1, ClothingID: 9999}, // dangling reference
		},
	}
	err := repo.Create(ctx, procurement)
	require.Error(t, err)

	// No orphaned parent or partial item set survives the failure.
	var parents, items int64
	require.NoError(t, db.Model(&model.Procurement{}).Count(&parents).Error)
	require.NoError(t, db.Model(&model.ProcurementItem{}).Count(&items).Error)
	assert.Zero(t, parents)
	assert.Zero(t, items)
}

func TestProcurementRepo_UpdateDescriptionOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProcurementRepo(db)
	owner := createTestUser(t, db, "100")
	boss := createTestBoss(t, db, owner.ID, "Shop")
	shirt := createTestClothing(t, db, boss.ID, "Shirt", 50)

	procurement := &model.Procurement{
		Description: strptr("initial"),
		UserID:      owner.ID,
		Items:       []model.ProcurementItem{{Amount: 3, ClothingID: shirt.ID}},
	}
	require.NoError(t, repo.Create(ctx, procurement))

	updated, err := repo.Update(ctx, owner.ID, procurement.ID, UpdateProcurementParams{Description: strptr("revised")})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "revised", *updated.Description)

	// Omitting the description clears it.
	cleared, err := repo.Update(ctx, owner.ID, procurement.ID, UpdateProcurementParams{})
	require.NoError(t, err)
	assert.Nil(t, cleared.Description)

	// Items ride along untouched.
	found, err := repo.FindByID(ctx, owner.ID, procurement.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 1)
}

func TestProcurementRepo_DeleteCascadesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProcurementRepo(db)
	owner := createTestUser(t, db, "100")
	boss := createTestBoss(t, db, owner.ID, "Shop")
	shirt := createTestClothing(t, db, boss.ID, "Shirt", 50)

	procurement := &model.Procurement{
		UserID: owner.ID,
		Items:  []model.ProcurementItem{{Amount: 3, ClothingID: shirt.ID}},
	}
	require.NoError(t, repo.Create(ctx, procurement))

	_, err := repo.Delete(ctx, owner.ID, procurement.ID)
	require.NoError(t, err)

	var items int64
	require.NoError(t, db.Model(&model.ProcurementItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestProcurementRepo_OwnershipAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProcurementRepo(db)
	owner := createTestUser(t, db, "100")
	other := createTestUser(t, db, "200")
	boss := createTestBoss(t, db, owner.ID, "Shop")
	shirt := createTestClothing(t, db, boss.ID, "Shirt", 50)

	mine := &model.Procurement{
		Description: strptr("bulk order"),
		UserID:      owner.ID,
		Items:       []model.ProcurementItem{{Amount: 3, ClothingID: shirt.ID}},
	}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, &model.Procurement{UserID: other.ID}))

	_, err := repo.FindByID(ctx, other.ID, mine.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	result, err := repo.ListByUser(ctx, owner.ID, ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	require.Len(t, result.Data, 1)
	assert.Len(t, result.Data[0].Items, 1)

	matched, err := repo.ListByUser(ctx, owner.ID, ListParams{Search: "bulk"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, matched.Total)

	missed, err := repo.ListByUser(ctx, owner.ID, ListParams{Search: "nothing"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, missed.Total)
}
