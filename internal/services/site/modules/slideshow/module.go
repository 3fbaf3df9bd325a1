// Package slideshow serves the paged presentation viewer.
package slideshow

import (
	"log"
	"net/http"

	module "github.com/jppf-project/site/internal/services/site/module"
	"github.com/jppf-project/site/internal/services/site/routepath"
	"github.com/jppf-project/site/internal/services/site/storage"
)

// Module provides the slideshow route.
type Module struct {
	sessions storage.SessionValueStore
	deck     Deck
	logger   *log.Logger
}

// New returns a slideshow module keeping bounds in sessions.
func New(sessions storage.SessionValueStore, deck Deck, logger *log.Logger) Module {
	return Module{sessions: sessions, deck: deck, logger: logger}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "slideshow"
}

// Mount wires the slideshow route.
func (m Module) Mount() (module.Mount, error) {
	logger := m.logger
	if logger == nil {
		logger = log.Default()
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{sessions: m.sessions, deck: m.deck.normalized(), logger: logger})
	return module.Mount{Prefix: routepath.Presentation, Handler: mux}, nil
}
