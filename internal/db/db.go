package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/Lumora-KR/rps-server/internal/auth"
	"github.com/Lumora-KR/rps-server/internal/config"
	"github.com/Lumora-KR/rps-server/internal/models"
)

const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxLifetime = 5 * time.Minute
	pingTimeout     = 5 * time.Second

	defaultAdminUsername = "rpstours"
	defaultAdminPassword = "rpstours123"
)

// Connect opens the database, runs migrations, and seeds the default admin
// account. The returned handle is passed into services explicitly; there is
// no package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.DBHost).Str("db", cfg.DBName).Msg("connecting to PostgreSQL")
		dialector = postgres.Open(cfg.PostgresDSN())
	} else {
		log.Info().Str("path", cfg.SQLitePath).Msg("connecting to SQLite")
		sqlDB, err := sql.Open("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        cfg.SQLitePath,
			Conn:       sqlDB,
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	gdb, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	if err := SeedAdminUser(gdb); err != nil {
		return nil, err
	}

	log.Info().Msg("database connected and migrated")
	return gdb, nil
}

// Migrate creates or updates all tables.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.CarRentalDetail{},
		&models.TourPackageDetail{},
		&models.HotelEnquiry{},
		&models.ContactForm{},
		&models.HomeEnquiry{},
		&models.CarRental{},
		&models.Hotel{},
		&models.Image{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedAdminUser creates the default admin account if no user exists with the
// default username.
func SeedAdminUser(gdb *gorm.DB) error {
	var user models.User
	err := gdb.Where("username = ?", defaultAdminUsername).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}
	if err := gdb.Create(&models.User{Username: defaultAdminUsername, PasswordHash: hash}).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Info().Str("username", defaultAdminUsername).Msg("default admin user created")
	return nil
}

// Close closes the underlying connection pool.
func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
