// Package planner parses planner command flags and starts the MCP runtime.
package planner

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/cmd"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/config"
	mcpserver "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/mcp/service"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/app"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/content"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/storage/sqlite"
)

// Config holds planner command configuration.
type Config struct {
	StoragePath string `env:"PLANNER_STORAGE_PATH" envDefault:"planner.db" yaml:"storage_path"`
	ConfigFile  string `env:"PLANNER_CONFIG_FILE" yaml:"-"`
}

// ParseConfig parses environment, an optional YAML file, and flags into a
// Config. Flags override the file, which overrides the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.StoragePath, "storage", cfg.StoragePath, "SQLite profile database path")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Optional YAML config file path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	// The overlay writes through the same fields the flags are bound to, so
	// snapshot explicitly-set flags first and restore them afterwards.
	setFlags := map[string]string{}
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = f.Value.String() })
	if err := config.ApplyFile(cfg.ConfigFile, &cfg); err != nil {
		return Config{}, err
	}
	for name, value := range setFlags {
		if err := fs.Set(name, value); err != nil {
			return Config{}, fmt.Errorf("restore flag %s: %w", name, err)
		}
	}
	return cfg, nil
}

// Run starts the planner MCP service on stdio.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePlanner, func(ctx context.Context) error {
		tables, err := content.Load()
		if err != nil {
			return fmt.Errorf("load rules content: %w", err)
		}
		store, err := sqlite.Open(ctx, cfg.StoragePath)
		if err != nil {
			return fmt.Errorf("open profile store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close profile store: %v", err)
			}
		}()

		svc, err := app.NewService(tables, store)
		if err != nil {
			return err
		}
		return mcpserver.Run(ctx, svc)
	})
}
