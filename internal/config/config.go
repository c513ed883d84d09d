package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Roastery"`
	}

	Data struct {
		Dir            string `envconfig:"DATA_DIR" default:"."`
		InventoryFile  string `envconfig:"INVENTORY_FILE" default:"bean_inventory.txt"`
		ProcessingFile string `envconfig:"PROCESSING_FILE" default:"processing_records.txt"`
		OperationsLog  string `envconfig:"OPERATIONS_LOG" default:"operations_log.txt"`
	}
}

func (c *Config) InventoryPath() string {
	return filepath.Join(c.Data.Dir, c.Data.InventoryFile)
}

func (c *Config) ProcessingPath() string {
	return filepath.Join(c.Data.Dir, c.Data.ProcessingFile)
}

func (c *Config) OperationsLogPath() string {
	return filepath.Join(c.Data.Dir, c.Data.OperationsLog)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
