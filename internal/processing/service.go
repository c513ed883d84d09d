package processing

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/roastery/internal/oplog"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=processing
type Repository interface {
	ListRecords(ctx context.Context) ([]*Record, error)
	AppendRecord(ctx context.Context, r *Record) error
}

type Service struct {
	repo Repository
	ops  *oplog.Logger
}

func NewService(repo Repository, ops *oplog.Logger) *Service {
	return &Service{repo: repo, ops: ops}
}

type CreateParams struct {
	BatchID       string
	Type          ProcessType
	StartDate     string
	EndDate       string
	WeightAfterKg float64
}

// Record appends one processing stage. Unlike inventory batches there is no
// uniqueness constraint: a batch legitimately goes through several stages.
func (s *Service) Record(ctx context.Context, params CreateParams) (*Record, error) {
	if params.BatchID == "" {
		return nil, fmt.Errorf("batch id is required")
	}

	if params.Type == "" {
		return nil, fmt.Errorf("process type is required")
	}

	if params.WeightAfterKg < 0 {
		return nil, fmt.Errorf("weight must not be negative")
	}

	r := &Record{
		BatchID:       params.BatchID,
		Type:          params.Type,
		StartDate:     params.StartDate,
		EndDate:       params.EndDate,
		WeightAfterKg: params.WeightAfterKg,
	}

	if err := s.repo.AppendRecord(ctx, r); err != nil {
		return nil, err
	}

	s.ops.Log("record_processing", fmt.Sprintf("Recorded %s for batch %s", r.Type, r.BatchID))

	return r, nil
}

func (s *Service) List(ctx context.Context) ([]*Record, error) {
	return s.repo.ListRecords(ctx)
}
