// Package links serves the categorized link directory page.
package links

import (
	"log"
	"net/http"

	module "github.com/jppf-project/site/internal/services/site/module"
	"github.com/jppf-project/site/internal/services/site/routepath"
	"github.com/jppf-project/site/internal/services/site/storage"
)

// Options tunes how the directory is read.
type Options struct {
	// SnapshotReads reads groups and links inside one read transaction.
	SnapshotReads bool
	Logger        *log.Logger
}

// Module provides the link directory route.
type Module struct {
	directories storage.LinkDirectoryOpener
	options     Options
}

// New returns a links module reading from directories.
func New(directories storage.LinkDirectoryOpener, options Options) Module {
	return Module{directories: directories, options: options}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "links"
}

// Mount wires the directory route.
func (m Module) Mount() (module.Mount, error) {
	logger := m.options.Logger
	if logger == nil {
		logger = log.Default()
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{
		service: service{directories: m.directories, snapshot: m.options.SnapshotReads, logger: logger},
		logger:  logger,
	})
	return module.Mount{Prefix: routepath.Links, Handler: mux}, nil
}
