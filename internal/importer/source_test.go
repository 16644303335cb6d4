package importer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAll_PreservesInputOrder(t *testing.T) {
	first := testutil.WorkbookBytes(t, testutil.DataRow("2024-03-04", "T1", "ProjA", "from-first", 1, "Dev"))
	second := testutil.WorkbookBytes(t, testutil.DataRow("2024-03-05", "T2", "ProjA", "from-second", 2, "Dev"))

	slow := Source{
		Name: "slow.xlsx",
		Load: func(ctx context.Context) ([]byte, error) {
			time.Sleep(30 * time.Millisecond)
			return first, nil
		},
	}
	fast := BytesSource("fast.xlsx", second)

	res, err := ExtractAll(context.Background(), []Source{slow, fast}, "ProjA", Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "from-first", res.Records[0].Description)
	assert.Equal(t, "from-second", res.Records[1].Description)
	assert.Equal(t, 2, res.RowsRead)
}

func TestExtractAll_FileSource(t *testing.T) {
	path := testutil.WriteWorkbook(t, "marzo.xlsx",
		testutil.DataRow("2024-03-04", "T1", "ProjA", "desc", 8, "Dev"),
		testutil.DataRow("2024-03-05", "T1", "ProjB", "desc", 4, "Dev"),
	)

	res, err := ExtractAll(context.Background(), []Source{FileSource(path)}, "ProjA", Options{})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 8.0, res.Records[0].Hours)
}

func TestExtractAll_DecodeFailureNamesFile(t *testing.T) {
	good := BytesSource("good.xlsx", testutil.WorkbookBytes(t))
	bad := BytesSource("broken.xlsx", []byte("not a workbook"))

	_, err := ExtractAll(context.Background(), []Source{good, bad}, "ProjA", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.Contains(t, err.Error(), "broken.xlsx")
}

func TestExtractAll_ReadFailure(t *testing.T) {
	src := Source{Name: "gone.xlsx", Load: func(context.Context) ([]byte, error) {
		return nil, errors.New("permission denied")
	}}

	_, err := ExtractAll(context.Background(), []Source{src}, "ProjA", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
	assert.Contains(t, err.Error(), "gone.xlsx")
}

func TestExtractAll_CancelledContextSkipsLoads(t *testing.T) {
	var loads atomic.Int32
	src := Source{Name: "a.xlsx", Load: func(context.Context) ([]byte, error) {
		loads.Add(1)
		return nil, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractAll(ctx, []Source{src, src}, "ProjA", Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), loads.Load())
}

func TestExtractAll_NoSources(t *testing.T) {
	res, err := ExtractAll(context.Background(), nil, "ProjA", Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}
