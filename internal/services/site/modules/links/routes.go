package links

import (
	"net/http"

	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Links, h.handleDirectory)
	mux.HandleFunc(routepath.Links, httpx.MethodNotAllowed(http.MethodGet))
}
