package inventory_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
	"github.com/MrJamesThe3rd/roastery/internal/oplog"
)

func testLogger(t *testing.T) *oplog.Logger {
	t.Helper()
	return oplog.New(filepath.Join(t.TempDir(), "ops.txt"))
}

func TestService_Add(t *testing.T) {
	type testCase struct {
		name      string
		params    inventory.CreateParams
		setupMock func(m *inventory.MockRepository)
		wantErr   bool
		wantErrIs error
	}

	validParams := inventory.CreateParams{
		ID:           "B004",
		ReceivedDate: "2023-05-18",
		FarmerID:     "F042",
		BeanType:     "Arabica",
		WeightKg:     120,
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams,
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					ListBatches(gomock.Any()).
					Return([]*inventory.Batch{{ID: "B001"}}, nil)
				m.EXPECT().
					AppendBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, b *inventory.Batch) error {
						assert.Equal(t, "B004", b.ID)
						assert.Equal(t, inventory.StatusReceived, b.Status)
						return nil
					})
			},
		},
		{
			name:   "Duplicate",
			params: inventory.CreateParams{ID: "B001", WeightKg: 50},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					ListBatches(gomock.Any()).
					Return([]*inventory.Batch{{ID: "B001"}}, nil)
			},
			wantErr:   true,
			wantErrIs: inventory.ErrDuplicateBatch,
		},
		{
			name:    "EmptyID",
			params:  inventory.CreateParams{WeightKg: 50},
			wantErr: true,
		},
		{
			name:    "NegativeWeight",
			params:  inventory.CreateParams{ID: "B005", WeightKg: -1},
			wantErr: true,
		},
		{
			name:   "RepoReadError",
			params: validParams,
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					ListBatches(gomock.Any()).
					Return(nil, errors.New("disk error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventory.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := inventory.NewService(repo, testLogger(t))
			got, err := svc.Add(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, inventory.StatusReceived, got.Status)
		})
	}
}

func TestService_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		ListBatches(gomock.Any()).
		Return([]*inventory.Batch{
			{ID: "B001", BeanType: "Arabica"},
			{ID: "B002", BeanType: "Robusta"},
		}, nil).
		Times(2)

	svc := inventory.NewService(repo, testLogger(t))

	got, err := svc.Find(context.Background(), "B002")
	require.NoError(t, err)
	assert.Equal(t, "Robusta", got.BeanType)

	_, err = svc.Find(context.Background(), "B999")
	assert.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), "B001", inventory.StatusRoasting).
		Return(nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), "B999", inventory.StatusRoasting).
		Return(inventory.ErrNotFound)

	svc := inventory.NewService(repo, testLogger(t))

	require.NoError(t, svc.UpdateStatus(context.Background(), "B001", inventory.StatusRoasting))
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), "B999", inventory.StatusRoasting), inventory.ErrNotFound)
}

func TestService_UpdateStatus_EmptyStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	svc := inventory.NewService(repo, testLogger(t))

	assert.Error(t, svc.UpdateStatus(context.Background(), "B001", ""))
}
