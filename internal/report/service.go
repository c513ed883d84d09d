// Package report computes aggregate views over the inventory and
// processing stores. Reports degrade gracefully: cross-file mismatches are
// warned about and skipped, while store-level failures propagate unchanged.
package report

import (
	"context"
	"log/slog"
	"math"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
)

// Group accumulates the batches sharing a bean type or status.
type Group struct {
	Batches  int
	WeightKg float64
}

type Summary struct {
	TotalBatches  int
	TotalWeightKg float64
	ByBeanType    map[string]Group
	ByStatus      map[inventory.Status]Group
}

// BatchYield is the weight retention of one batch through its latest
// completed stage, as a percentage of the received weight.
type BatchYield struct {
	BatchID   string
	LastStage processing.ProcessType
	InitialKg float64
	FinalKg   float64
	YieldPct  float64 // rounded to two decimals
}

// StageStats aggregates yield across all records of one process type.
type StageStats struct {
	AverageYieldPct float64
	Records         int
}

type Service struct {
	inventory  *inventory.Service
	processing *processing.Service
}

func NewService(inv *inventory.Service, proc *processing.Service) *Service {
	return &Service{inventory: inv, processing: proc}
}

// Summary totals the inventory and groups it by bean type and status.
// An empty inventory is a valid state and yields a zero summary.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	batches, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ByBeanType: make(map[string]Group),
		ByStatus:   make(map[inventory.Status]Group),
	}

	for _, b := range batches {
		summary.TotalBatches++
		summary.TotalWeightKg += b.WeightKg

		byType := summary.ByBeanType[b.BeanType]
		byType.Batches++
		byType.WeightKg += b.WeightKg
		summary.ByBeanType[b.BeanType] = byType

		byStatus := summary.ByStatus[b.Status]
		byStatus.Batches++
		byStatus.WeightKg += b.WeightKg
		summary.ByStatus[b.Status] = byStatus
	}

	return summary, nil
}

// BatchYields reports, per batch in inventory order, the yield through the
// latest completed stage (the last record in file order with an end date).
// Batches with no completed stage have no defined yield and are omitted.
// Processing records referencing an unknown batch are skipped with a warning
// rather than failing the report.
func (s *Service) BatchYields(ctx context.Context) ([]BatchYield, error) {
	batches, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.processing.List(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(batches))
	for _, b := range batches {
		known[b.ID] = struct{}{}
	}

	latest := make(map[string]*processing.Record)

	for _, r := range records {
		if _, ok := known[r.BatchID]; !ok {
			slog.Warn("processing record references unknown batch",
				"batch_id", r.BatchID, "process_type", r.Type)
			continue
		}

		if !r.Completed() {
			continue
		}

		latest[r.BatchID] = r
	}

	var yields []BatchYield

	for _, b := range batches {
		r, ok := latest[b.ID]
		if !ok {
			continue
		}

		if b.WeightKg <= 0 {
			slog.Warn("batch has no initial weight, yield undefined", "batch_id", b.ID)
			continue
		}

		yields = append(yields, BatchYield{
			BatchID:   b.ID,
			LastStage: r.Type,
			InitialKg: b.WeightKg,
			FinalKg:   r.WeightAfterKg,
			YieldPct:  round2(r.WeightAfterKg / b.WeightKg * 100),
		})
	}

	return yields, nil
}

// StageAverages reports the mean yield percentage per process type over
// every record with a known batch, completed or not. This is the historical
// plant report; BatchYields is the per-batch view.
func (s *Service) StageAverages(ctx context.Context) (map[processing.ProcessType]StageStats, error) {
	batches, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.processing.List(ctx)
	if err != nil {
		return nil, err
	}

	initial := make(map[string]float64, len(batches))
	for _, b := range batches {
		initial[b.ID] = b.WeightKg
	}

	type acc struct {
		sumPct float64
		count  int
	}

	totals := make(map[processing.ProcessType]acc)

	for _, r := range records {
		weight, ok := initial[r.BatchID]
		if !ok {
			slog.Warn("processing record references unknown batch",
				"batch_id", r.BatchID, "process_type", r.Type)
			continue
		}

		if weight <= 0 {
			continue
		}

		a := totals[r.Type]
		a.sumPct += r.WeightAfterKg / weight * 100
		a.count++
		totals[r.Type] = a
	}

	stats := make(map[processing.ProcessType]StageStats, len(totals))
	for pt, a := range totals {
		stats[pt] = StageStats{
			AverageYieldPct: round2(a.sumPct / float64(a.count)),
			Records:         a.count,
		}
	}

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
