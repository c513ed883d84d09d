// Command seed writes the sample data set into the configured record files,
// replacing whatever is there.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/roastery/internal/config"
	"github.com/MrJamesThe3rd/roastery/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := seed.Create(context.Background(), cfg); err != nil {
		slog.Error("failed to create sample data", "error", err)
		os.Exit(1)
	}

	slog.Info("sample data created",
		"inventory", cfg.InventoryPath(),
		"processing", cfg.ProcessingPath(),
	)
}
