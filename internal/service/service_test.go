package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/ws"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_foreign_keys=on", name)

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

func setupTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func strptr(s string) *string { return &s }

var ctx = context.Background()
