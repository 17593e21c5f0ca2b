package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// Open connects to the database selected by driver ("mysql" or "sqlite").
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "mysql":
		return NewMySQL(dsn)
	case "sqlite":
		return NewSQLite(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Migrate creates or updates the tables for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	if db.Dialector.Name() == "mysql" {
		// User names are case-sensitive, including their unique index.
		if err := db.Exec(mysqlBinaryNameColumn).Error; err != nil {
			return fmt.Errorf("users.name collation: %w", err)
		}
	}
	return nil
}

const mysqlBinaryNameColumn = "ALTER TABLE users MODIFY name VARCHAR(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"

// Reset drops all tables. Tasks go first because they reference users.
func Reset(db *gorm.DB) {
	tables := []interface{}{
		&model.Task{},
		&model.User{},
	}
	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormConfig enables driver error translation so unique violations
// surface as gorm.ErrDuplicatedKey on every supported driver.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}
