// Package seed parses seed command flags and loads link directory content.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/jppf-project/site/internal/platform/cmd"
	"github.com/jppf-project/site/internal/services/site/storage/sqlite"
	"github.com/jppf-project/site/internal/tools/seed"
)

// Config holds seed command configuration.
type Config struct {
	DBPath       string `env:"JPPF_SITE_DB_PATH" envDefault:"data/site.db"`
	ManifestPath string `env:"JPPF_SITE_SEED_MANIFEST"`
	Verbose      bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.ManifestPath, "manifest", cfg.ManifestPath, "seed manifest path (default: bundled manifest)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("db path is required")
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open site store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				_, _ = fmt.Fprintf(errOut, "close site store: %v\n", err)
			}
		}()

		runner := seed.NewRunner(seed.Config{ManifestPath: cfg.ManifestPath, Verbose: cfg.Verbose}, store, errOut)
		result, err := runner.Run(ctx)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "groups: %d created, %d skipped\nlinks: %d created, %d skipped\n",
			result.GroupsCreated, result.GroupsSkipped, result.LinksCreated, result.LinksSkipped)
		return nil
	})
}
