package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-garment-supply/internal/model"
)

// setupTestDB opens an in-memory SQLite database with foreign-key
// enforcement on, so cascade behavior matches Postgres. cache=shared keeps
// every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Boss{},
		&model.Staff{},
		&model.Clothing{},
		&model.Shipment{},
		&model.Procurement{},
		&model.ShipmentItem{},
		&model.ProcurementItem{},
		&model.Production{},
		&model.ProductionItem{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, phone string) *model.User {
	t.Helper()
	user := &model.User{Username: "user-" + phone, PhoneNumber: phone}
	require.NoError(t, user.SetPassword("password"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBoss(t *testing.T, db *gorm.DB, userID uint, name string) *model.Boss {
	t.Helper()
	boss := &model.Boss{Name: name, PhoneNumber: "000", UserID: userID}
	require.NoError(t, db.Create(boss).Error)
	return boss
}

func createTestStaff(t *testing.T, db *gorm.DB, userID uint, name string) *model.Staff {
	t.Helper()
	staff := &model.Staff{Name: name, PhoneNumber: "000", UserID: userID}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func createTestClothing(t *testing.T, db *gorm.DB, bossID uint, name string, price float64) *model.Clothing {
	t.Helper()
	clothing := &model.Clothing{Name: name, Price: price, BossID: bossID}
	require.NoError(t, db.Create(clothing).Error)
	return clothing
}

func strptr(s string) *string { return &s }

func timeptr(t time.Time) *time.Time { return &t }

var ctx = context.Background()
