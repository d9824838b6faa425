package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/andrewpaige1/nodebook-study/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Connect opens postgres when DB_URL is set and a local SQLite file otherwise,
// then migrates the key/value table.
func Connect(env Environment) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if env.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(env.DatabaseURL), gormCfg)
	} else {
		if dir := filepath.Dir(env.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(env.SQLitePath), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return db, nil
}
