package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/roastery/internal/flatfile"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
	"github.com/MrJamesThe3rd/roastery/internal/processing/store"
)

func TestStore_ListRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processing_records.txt")
	content := "B001,washing,2023-05-16,2023-05-17,245\nB001,drying,2023-05-18,,238\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := store.New(path).ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, &processing.Record{
		BatchID:       "B001",
		Type:          processing.TypeWashing,
		StartDate:     "2023-05-16",
		EndDate:       "2023-05-17",
		WeightAfterKg: 245,
	}, records[0])

	// In-progress stage: blank end date.
	assert.False(t, records[1].Completed())
	assert.Equal(t, processing.TypeDrying, records[1].Type)
}

func TestStore_ListRecords_MissingFile(t *testing.T) {
	records, err := store.New(filepath.Join(t.TempDir(), "nope.txt")).ListRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_ListRecords_FailsFastOnMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processing_records.txt")
	require.NoError(t, os.WriteFile(path, []byte("B001,washing,2023-05-16,2023-05-17,245\nB002,washing\n"), 0o644))

	_, err := store.New(path).ListRecords(context.Background())

	var malformed *flatfile.MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
}

func TestStore_AppendRecord_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processing_records.txt")
	s := store.New(path)

	want := &processing.Record{
		BatchID:       "B002",
		Type:          processing.TypeRoasting,
		StartDate:     "2023-05-20",
		EndDate:       "",
		WeightAfterKg: 210.25,
	}
	require.NoError(t, s.AppendRecord(context.Background(), want))

	records, err := s.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, want, records[0])
}

func TestStore_MultipleStagesPerBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processing_records.txt")
	s := store.New(path)
	ctx := context.Background()

	for _, r := range []*processing.Record{
		{BatchID: "B001", Type: processing.TypeWashing, StartDate: "2023-05-16", EndDate: "2023-05-17", WeightAfterKg: 245},
		{BatchID: "B001", Type: processing.TypeDrying, StartDate: "2023-05-18", EndDate: "2023-05-20", WeightAfterKg: 230},
	} {
		require.NoError(t, s.AppendRecord(ctx, r))
	}

	records, err := s.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// File order is insertion order.
	assert.Equal(t, processing.TypeWashing, records[0].Type)
	assert.Equal(t, processing.TypeDrying, records[1].Type)
}
