package processing_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/roastery/internal/oplog"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
)

func testLogger(t *testing.T) *oplog.Logger {
	t.Helper()
	return oplog.New(filepath.Join(t.TempDir(), "ops.txt"))
}

func TestService_Record(t *testing.T) {
	type testCase struct {
		name      string
		params    processing.CreateParams
		setupMock func(m *processing.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: processing.CreateParams{
				BatchID:       "B001",
				Type:          processing.TypeWashing,
				StartDate:     "2023-05-16",
				EndDate:       "2023-05-17",
				WeightAfterKg: 245,
			},
			setupMock: func(m *processing.MockRepository) {
				m.EXPECT().
					AppendRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *processing.Record) error {
						assert.Equal(t, "B001", r.BatchID)
						assert.True(t, r.Completed())
						return nil
					})
			},
		},
		{
			name: "InProgressStage",
			params: processing.CreateParams{
				BatchID:       "B002",
				Type:          processing.TypeDrying,
				StartDate:     "2023-05-18",
				WeightAfterKg: 160,
			},
			setupMock: func(m *processing.MockRepository) {
				m.EXPECT().
					AppendRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *processing.Record) error {
						assert.False(t, r.Completed())
						return nil
					})
			},
		},
		{
			name:    "EmptyBatchID",
			params:  processing.CreateParams{Type: processing.TypeWashing, WeightAfterKg: 10},
			wantErr: true,
		},
		{
			name:    "EmptyProcessType",
			params:  processing.CreateParams{BatchID: "B001", WeightAfterKg: 10},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: processing.CreateParams{BatchID: "B001", Type: processing.TypeWashing, WeightAfterKg: 10},
			setupMock: func(m *processing.MockRepository) {
				m.EXPECT().
					AppendRecord(gomock.Any(), gomock.Any()).
					Return(errors.New("disk full"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := processing.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := processing.NewService(repo, testLogger(t))
			got, err := svc.Record(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := processing.NewMockRepository(ctrl)
	repo.EXPECT().
		ListRecords(gomock.Any()).
		Return([]*processing.Record{
			{BatchID: "B001", Type: processing.TypeWashing},
			{BatchID: "B001", Type: processing.TypeDrying},
		}, nil)

	svc := processing.NewService(repo, testLogger(t))

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
