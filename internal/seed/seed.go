// Package seed creates the demonstration data set for a fresh plant.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MrJamesThe3rd/roastery/internal/config"
	"github.com/MrJamesThe3rd/roastery/internal/inventory"
	invstore "github.com/MrJamesThe3rd/roastery/internal/inventory/store"
	"github.com/MrJamesThe3rd/roastery/internal/oplog"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
	procstore "github.com/MrJamesThe3rd/roastery/internal/processing/store"
)

// Create replaces both record files with the sample data set. The data is
// written through the services so it takes the same path as operator input,
// including the audit trail.
func Create(ctx context.Context, cfg *config.Config) error {
	for _, path := range []string{cfg.InventoryPath(), cfg.ProcessingPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}

	ops := oplog.New(cfg.OperationsLogPath())
	inv := inventory.NewService(invstore.New(cfg.InventoryPath()), ops)
	proc := processing.NewService(procstore.New(cfg.ProcessingPath()), ops)

	batches := []inventory.CreateParams{
		{ID: "B001", ReceivedDate: "2023-05-15", FarmerID: "F042", BeanType: "Arabica", WeightKg: 250, Status: inventory.StatusReceived},
		{ID: "B002", ReceivedDate: "2023-05-16", FarmerID: "F036", BeanType: "Robusta", WeightKg: 300, Status: inventory.StatusWashing},
		{ID: "B003", ReceivedDate: "2023-05-17", FarmerID: "F042", BeanType: "Arabica", WeightKg: 175, Status: inventory.StatusDrying},
	}

	for _, p := range batches {
		if _, err := inv.Add(ctx, p); err != nil {
			return fmt.Errorf("seeding batch %s: %w", p.ID, err)
		}
	}

	stages := []processing.CreateParams{
		{BatchID: "B001", Type: processing.TypeWashing, StartDate: "2023-05-16", EndDate: "2023-05-17", WeightAfterKg: 245},
		{BatchID: "B002", Type: processing.TypeWashing, StartDate: "2023-05-17", EndDate: "2023-05-18", WeightAfterKg: 294},
		{BatchID: "B003", Type: processing.TypeDrying, StartDate: "2023-05-18", EndDate: "2023-05-20", WeightAfterKg: 160},
	}

	for _, p := range stages {
		if _, err := proc.Record(ctx, p); err != nil {
			return fmt.Errorf("seeding stage for %s: %w", p.BatchID, err)
		}
	}

	return nil
}
