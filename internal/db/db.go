package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a connected GORM DB instance for the configured driver.
// sqlite keeps the whole store in a single local file; mysql is available
// for server deployments.
func Open(driver, sqlitePath, mysqlDSN string) (*gorm.DB, error) {
	// TranslateError maps driver duplicate-key failures to
	// gorm.ErrDuplicatedKey so callers never see raw storage errors.
	cfg := &gorm.Config{TranslateError: true}

	switch driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(sqlitePath), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		return db, nil
	case "mysql":
		db, err := gorm.Open(mysql.Open(mysqlDSN), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}
