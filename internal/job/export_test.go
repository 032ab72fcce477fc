package job_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)
	ctx := context.Background()

	first := validCreate()
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := validCreate()
	second.ClientName = "Globex"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	data, err := svc.ExportXLSX(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two jobs

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "job_id", rows[0][1])
	assert.Equal(t, "client_name", rows[0][2])

	// newest first, matching the list ordering
	assert.Equal(t, "DC-2", rows[1][1])
	assert.Equal(t, "Globex", rows[1][2])
	assert.Equal(t, "DC-1", rows[2][1])
	assert.Equal(t, "Acme Exports", rows[2][2])
}

func TestExportXLSXEmptyStore(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	data, err := svc.ExportXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
