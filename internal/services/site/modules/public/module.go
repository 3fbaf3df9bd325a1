// Package public serves the health probe and the not-found fallback.
package public

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/jppf-project/site/internal/services/site/i18n"
	module "github.com/jppf-project/site/internal/services/site/module"
	apperrors "github.com/jppf-project/site/internal/services/site/platform/errors"
	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/platform/weberror"
	"github.com/jppf-project/site/internal/services/site/routepath"
)

// Pinger reports whether a backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Module provides the root fallback and health routes.
type Module struct {
	store  Pinger
	logger *log.Logger
}

// New returns the public module. A nil store keeps the health probe static.
func New(store Pinger, logger *log.Logger) Module {
	return Module{store: store, logger: logger}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "public"
}

// Mount wires the health route and the not-found fallback under the root.
func (m Module) Mount() (module.Mount, error) {
	logger := m.logger
	if logger == nil {
		logger = log.Default()
	}
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, r *http.Request) {
		if m.store != nil {
			if err := m.store.Ping(httpx.RequestContext(r)); err != nil {
				logger.Printf("health check failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
				_ = httpx.WriteText(w, http.StatusServiceUnavailable, "unavailable")
				return
			}
		}
		_ = httpx.WriteText(w, http.StatusOK, "ok")
	})
	mux.HandleFunc(routepath.Health, httpx.MethodNotAllowed(http.MethodGet))
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		loc, lang := i18n.ResolveLocalizer(w, r)
		path := "-"
		if r.URL != nil {
			path = strings.TrimSpace(r.URL.Path)
		}
		weberror.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, apperrors.KeyNotFound, "no route for "+path), loc, lang)
	})
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
