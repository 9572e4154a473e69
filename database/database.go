package database

import (
	"Shelf/internal/config"
	"Shelf/internal/models"
	"Shelf/internal/services"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var postgresEnvVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_TZ"}

// SetupDatabase opens the configured database and migrates the schema.
func SetupDatabase(configuration *config.Configuration, logService services.LogService) (*gorm.DB, error) {
	dialector, err := dialectorFor(configuration.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(logService.Log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", configuration.Database.Driver, err)
	}

	if configuration.Database.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer and the pragma is per connection.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	case "postgres":
		for _, envVariable := range postgresEnvVariables {
			if os.Getenv(envVariable) == "" {
				return nil, fmt.Errorf("%s environment variable not set", envVariable)
			}
		}
		sslMode := os.Getenv("DB_SSLMODE")
		if sslMode == "" {
			sslMode = "disable"
		}
		dsn := fmt.Sprintf("%s sslmode=%s", os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} TimeZone=${DB_TZ}"), sslMode)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Box{}, &models.Item{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB, logService services.LogService) {
	sqlDB, err := db.DB()
	if err != nil {
		logService.Log.Errorf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logService.Log.Errorf("Error closing database: %v", err)
	}
}
