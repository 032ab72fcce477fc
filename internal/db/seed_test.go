package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcjobs/internal/db"
	"dcjobs/internal/directory"
	"dcjobs/internal/testutil"
)

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()
	gdb := testutil.OpenDB(t)

	require.NoError(t, db.Seed(gdb))
	require.NoError(t, db.Seed(gdb))

	var employees, codes, users int64
	require.NoError(t, gdb.Model(&directory.Employee{}).Count(&employees).Error)
	require.NoError(t, gdb.Model(&directory.Code{}).Count(&codes).Error)
	require.NoError(t, gdb.Model(&directory.User{}).Count(&users).Error)

	assert.Equal(t, int64(3), employees)
	assert.Equal(t, int64(4), codes)
	assert.Equal(t, int64(2), users)
}

func TestSeedSkipsPopulatedTables(t *testing.T) {
	t.Parallel()
	gdb := testutil.OpenDB(t)

	require.NoError(t, gdb.Create(&directory.Employee{Name: "Dana"}).Error)
	require.NoError(t, db.Seed(gdb))

	var employees int64
	require.NoError(t, gdb.Model(&directory.Employee{}).Count(&employees).Error)
	assert.Equal(t, int64(1), employees)

	// other tables still get their starter rows
	var codes int64
	require.NoError(t, gdb.Model(&directory.Code{}).Count(&codes).Error)
	assert.Equal(t, int64(4), codes)
}
