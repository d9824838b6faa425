package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andrewpaige1/nodebook-study/logger"
	"github.com/andrewpaige1/nodebook-study/models"
	"github.com/andrewpaige1/nodebook-study/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB opens a throwaway SQLite database with the storage table migrated.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	return logger.NewNop()
}

// Store is a store over a fresh SQLite database.
func Store(tb testing.TB) *store.Store {
	tb.Helper()
	return store.New(store.NewGormBackend(DB(tb)), Logger(tb))
}

// FailingBackend rejects every save, like a browser over its storage quota.
type FailingBackend struct {
	Err   error
	Saves int
}

func (f *FailingBackend) Load(ctx context.Context, key string) ([]byte, error) {
	return nil, store.ErrNotFound
}

func (f *FailingBackend) Save(ctx context.Context, key string, raw []byte) error {
	f.Saves++
	return f.Err
}

// FlakyBackend wraps a working backend and fails the next LoadFailures loads.
// Saves are counted and forwarded.
type FlakyBackend struct {
	store.Backend
	LoadFailures int
	Err          error
	Saves        int
}

func (f *FlakyBackend) Load(ctx context.Context, key string) ([]byte, error) {
	if f.LoadFailures > 0 {
		f.LoadFailures--
		return nil, f.Err
	}
	return f.Backend.Load(ctx, key)
}

func (f *FlakyBackend) Save(ctx context.Context, key string, raw []byte) error {
	f.Saves++
	return f.Backend.Save(ctx, key, raw)
}
