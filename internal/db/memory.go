package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenMemory opens a throwaway in-memory sqlite database with the full
// schema migrated. Package tests use it to exercise the real repos without
// a Postgres instance. The pool is pinned to one connection: every sqlite
// ":memory:" connection is a distinct database.
func OpenMemory() (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open in-memory sqlite: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gormDB.AutoMigrate(allModels()...); err != nil {
		return nil, fmt.Errorf("migrate in-memory sqlite: %w", err)
	}
	return gormDB, nil
}
