package inventory

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/roastery/internal/oplog"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	ListBatches(ctx context.Context) ([]*Batch, error)
	AppendBatch(ctx context.Context, b *Batch) error
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type Service struct {
	repo Repository
	ops  *oplog.Logger
}

func NewService(repo Repository, ops *oplog.Logger) *Service {
	return &Service{repo: repo, ops: ops}
}

type CreateParams struct {
	ID           string
	ReceivedDate string
	FarmerID     string
	BeanType     string
	WeightKg     float64
	Status       Status
}

// Add appends a new batch to the inventory. The id must be unique across
// the file, which requires reading the existing records first.
func (s *Service) Add(ctx context.Context, params CreateParams) (*Batch, error) {
	if params.ID == "" {
		return nil, fmt.Errorf("batch id is required")
	}

	if params.WeightKg < 0 {
		return nil, fmt.Errorf("weight must not be negative")
	}

	status := params.Status
	if status == "" {
		status = StatusReceived
	}

	existing, err := s.repo.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range existing {
		if b.ID == params.ID {
			return nil, fmt.Errorf("batch %s: %w", params.ID, ErrDuplicateBatch)
		}
	}

	b := &Batch{
		ID:           params.ID,
		ReceivedDate: params.ReceivedDate,
		FarmerID:     params.FarmerID,
		BeanType:     params.BeanType,
		WeightKg:     params.WeightKg,
		Status:       status,
	}

	if err := s.repo.AppendBatch(ctx, b); err != nil {
		return nil, err
	}

	s.ops.Log("add_batch", fmt.Sprintf("Added batch %s", b.ID))

	return b, nil
}

func (s *Service) List(ctx context.Context) ([]*Batch, error) {
	return s.repo.ListBatches(ctx)
}

// Find returns the batch with the given id, or ErrNotFound. Absence is an
// expected outcome here, not a fault.
func (s *Service) Find(ctx context.Context, id string) (*Batch, error) {
	batches, err := s.repo.ListBatches(ctx)
	if err != nil {
		return nil, err
	}

	for _, b := range batches {
		if b.ID == id {
			return b, nil
		}
	}

	return nil, ErrNotFound
}

// UpdateStatus sets the status of an existing batch. Unlike Find, a missing
// batch is an error here.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) error {
	if status == "" {
		return fmt.Errorf("status is required")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.ops.Log("update_status", fmt.Sprintf("Updated batch %s status to %s", id, status))

	return nil
}
