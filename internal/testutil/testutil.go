package testutil

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dcjobs/internal/db"
	"dcjobs/internal/directory"
)

// OpenDB returns a migrated per-test sqlite database. A single
// connection keeps concurrent callers serialized the way a pooled
// Postgres would arbitrate row locks.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "dcjobs.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrateAndIndexes(gdb))
	return gdb
}

// SeedDirectory inserts the reference rows most tests need and returns
// the employee the fixtures assign jobs to.
func SeedDirectory(t *testing.T, gdb *gorm.DB) directory.Employee {
	t.Helper()

	emp := directory.Employee{Name: "Alice"}
	require.NoError(t, gdb.Create(&emp).Error)
	require.NoError(t, gdb.Create(&directory.Employee{Name: "Bob"}).Error)

	codes := []directory.Code{
		{Item: "Document Printing", HSNCode: "4911"},
		{Item: "Courier Delivery", HSNCode: "9968"},
	}
	require.NoError(t, gdb.Create(&codes).Error)

	return emp
}
