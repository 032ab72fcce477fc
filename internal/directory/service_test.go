package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcjobs/internal/directory"
	"dcjobs/internal/testutil"
)

func newService(t *testing.T) *directory.Service {
	t.Helper()
	gdb := testutil.OpenDB(t)
	testutil.SeedDirectory(t, gdb)
	require.NoError(t, gdb.Create(&directory.User{
		Name: "Admin", MobileNo: "9000000001", Role: "admin",
	}).Error)
	return &directory.Service{DB: gdb}
}

func TestEmployees(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	employees, err := svc.Employees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Alice", employees[0].Name)
	assert.NotZero(t, employees[0].ID)
}

func TestCodeLabels(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	codes, err := svc.Codes(context.Background())
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, "Document Printing - 4911", codes[0].Label)
	assert.Equal(t, "Courier Delivery - 9968", codes[1].Label)
}

func TestFindByMobile(t *testing.T) {
	t.Parallel()
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.FindByMobile(ctx, "9000000001")
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Name)
	assert.Equal(t, "admin", u.Role)

	_, err = svc.FindByMobile(ctx, "0000000000")
	require.ErrorIs(t, err, directory.ErrNotFound)

	_, err = svc.FindByMobile(ctx, "  ")
	require.ErrorIs(t, err, directory.ErrNotFound)
}
