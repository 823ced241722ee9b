package database

import (
	"fmt"
	"log"

	"guru-mess-api/internal/config"
	"guru-mess-api/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQL database selected by cfg.StoreDriver and migrates
// the submission tables. MySQL DSNs need parseTime=true.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.MySQLDSN)
	default:
		return nil, fmt.Errorf("store driver %q is not an SQL database", cfg.StoreDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.StoreDriver, err)
	}

	log.Printf("Connected to %s successfully", cfg.StoreDriver)

	if err := db.AutoMigrate(&models.ContactMessage{}, &models.Reservation{}); err != nil {
		return nil, fmt.Errorf("failed to run auto-migration: %w", err)
	}

	log.Println("Database migration completed")
	return db, nil
}
