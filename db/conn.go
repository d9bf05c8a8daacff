// Package db contains things related to the database connection
package db

import (
	"bitwise74/review-api/model"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the configured database and migrates all tables.
// TranslateError is on so unique constraint violations surface as
// gorm.ErrDuplicatedKey on both drivers.
func New() (*gorm.DB, error) {
	driver := viper.GetString("database.driver")
	dsn := viper.GetString("database.dsn")

	var dial gorm.Dialector

	switch driver {
	case "postgres":
		dial = postgres.Open(dsn)
	case "sqlite":
		// SQLite ships with foreign keys off and the pragma is
		// per-connection, so it has to ride the DSN to reach every
		// connection the pool opens. A one-off Exec would leave the
		// cascade deletes declared on the models silently skipped on
		// all the other connections.
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %v database, %w", driver, err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.Category{},
		model.Genre{},
		model.Title{},
		model.Review{},
		model.Comment{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
