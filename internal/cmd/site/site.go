// Package site parses site service flags and launches the service.
package site

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/jppf-project/site/internal/platform/cmd"
	siteservice "github.com/jppf-project/site/internal/services/site"
	"github.com/jppf-project/site/internal/services/site/modules/slideshow"
	"github.com/jppf-project/site/internal/services/site/session"
	"github.com/jppf-project/site/internal/services/site/storage"
	"github.com/jppf-project/site/internal/services/site/storage/sqlite"
)

// Session backends accepted by SessionBackend.
const (
	SessionBackendMemory = "memory"
	SessionBackendSQLite = "sqlite"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr       string        `env:"JPPF_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath         string        `env:"JPPF_SITE_DB_PATH" envDefault:"data/site.db"`
	SessionBackend string        `env:"JPPF_SITE_SESSION_BACKEND" envDefault:"memory"`
	SessionTTL     time.Duration `env:"JPPF_SITE_SESSION_TTL" envDefault:"24h"`
	SlidesFirst    int           `env:"JPPF_SITE_SLIDES_FIRST" envDefault:"0"`
	SlidesLast     int           `env:"JPPF_SITE_SLIDES_LAST" envDefault:"20"`
	SlidesBaseURL  string        `env:"JPPF_SITE_SLIDES_BASE_URL" envDefault:"/overview/"`
	SlidesExt      string        `env:"JPPF_SITE_SLIDES_EXT" envDefault:".gif"`
	SlidesPDFURL   string        `env:"JPPF_SITE_SLIDES_PDF_URL" envDefault:"/documents/JPPF-Presentation.pdf"`
	SnapshotReads  bool          `env:"JPPF_SITE_SNAPSHOT_READS" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session store backend (memory, sqlite)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle session lifetime")
	fs.IntVar(&cfg.SlidesFirst, "slides-first", cfg.SlidesFirst, "First slide index for new sessions")
	fs.IntVar(&cfg.SlidesLast, "slides-last", cfg.SlidesLast, "Last slide index for new sessions")
	fs.StringVar(&cfg.SlidesBaseURL, "slides-base-url", cfg.SlidesBaseURL, "Base URL of slide images")
	fs.StringVar(&cfg.SlidesExt, "slides-ext", cfg.SlidesExt, "Slide image file extension")
	fs.StringVar(&cfg.SlidesPDFURL, "slides-pdf-url", cfg.SlidesPDFURL, "Presentation PDF URL (empty hides the link)")
	fs.BoolVar(&cfg.SnapshotReads, "snapshot-reads", cfg.SnapshotReads, "Read the link directory inside one transaction")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	switch cfg.SessionBackend {
	case SessionBackendMemory, SessionBackendSQLite:
	default:
		return fmt.Errorf("session backend %q is not supported", cfg.SessionBackend)
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return fmt.Errorf("db path is required")
	}
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if cfg.SlidesFirst > cfg.SlidesLast {
		return fmt.Errorf("slides first %d is after slides last %d", cfg.SlidesFirst, cfg.SlidesLast)
	}
	return nil
}

// Deck returns the slideshow deck described by cfg.
func (cfg Config) Deck() slideshow.Deck {
	return slideshow.Deck{
		BaseURL: cfg.SlidesBaseURL,
		Ext:     cfg.SlidesExt,
		PDFURL:  cfg.SlidesPDFURL,
		Bounds:  slideshow.Bounds{First: cfg.SlidesFirst, Last: cfg.SlidesLast},
	}
}

// Run starts the site HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		server, closeStore, err := newServer(cfg, log.Default())
		if err != nil {
			return err
		}
		defer closeStore()
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

func newServer(cfg Config, logger *log.Logger) (*siteservice.Server, func(), error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.DBPath, sqlite.WithSessionTTL(cfg.SessionTTL))
	if err != nil {
		return nil, nil, fmt.Errorf("open site store: %w", err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Printf("close site store: %v", err)
		}
	}

	if cfg.SessionBackend == SessionBackendSQLite {
		purged, err := store.PurgeExpiredSessions(context.Background())
		if err != nil {
			closeStore()
			return nil, nil, fmt.Errorf("purge expired sessions: %w", err)
		}
		logger.Printf("site sessions backend=sqlite ttl=%s purged=%d", cfg.SessionTTL, purged)
	}

	server, err := siteservice.NewServer(siteservice.Config{
		HTTPAddr:      cfg.HTTPAddr,
		Directories:   store,
		SnapshotReads: cfg.SnapshotReads,
		Sessions:      sessionStore(cfg, store),
		Deck:          cfg.Deck(),
		Health:        store,
		Logger:        logger,
	})
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("init site server: %w", err)
	}
	return server, closeStore, nil
}

func sessionStore(cfg Config, store *sqlite.Store) storage.SessionValueStore {
	if cfg.SessionBackend == SessionBackendSQLite {
		return store
	}
	return session.NewMemoryStore(cfg.SessionTTL)
}
