package slideshow

import (
	"net/http"

	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Presentation, h.handleSlideshow)
	mux.HandleFunc(routepath.Presentation, httpx.MethodNotAllowed(http.MethodGet))
}
