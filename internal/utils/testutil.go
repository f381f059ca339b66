package utils

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/Lumora-KR/rps-server/internal/models"
)

// SetupTestDB opens an isolated in-memory database with the full schema
// migrated, closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Each pool connection would get its own empty in-memory database, so
	// pin the pool to the single migrated connection.
	sqlDB.SetMaxOpenConns(1)

	gdb, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.CarRental{},
		&models.Hotel{},
		&models.CarRentalDetail{},
		&models.TourPackageDetail{},
		&models.HotelEnquiry{},
		&models.ContactForm{},
		&models.HomeEnquiry{},
		&models.Image{},
	))

	t.Cleanup(func() { sqlDB.Close() })
	return gdb
}
