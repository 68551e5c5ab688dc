package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables
type BaseModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate will set a UUID rather than numeric ID
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	return nil
}

// DatabaseConfig holds database connection settings. Driver selects the
// backing store: "sqlite" (local file, the default) or "mysql".
type DatabaseConfig struct {
	Driver string
	Path   string // sqlite file path, ":memory:" allowed
	DSN    string // mysql DSN
}

// InitDB opens the configured database and migrates the schema.
func InitDB(config DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch config.Driver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
	case "mysql":
		db, err = gorm.Open(mysql.Open(config.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", config.Driver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.Driver == "mysql" {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// A single connection keeps sqlite writes serialized and lets
		// ":memory:" databases survive across requests.
		sqlDB.SetMaxOpenConns(1)
	}

	// Auto migrate the database models
	err = db.AutoMigrate(
		&User{},
		&Medicine{},
		&GenericAlternative{},
		&Review{},
		&FAQ{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
