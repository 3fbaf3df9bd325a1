package links

import (
	"log"
	"net/http"

	"github.com/jppf-project/site/internal/services/site/i18n"
	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/platform/pagerender"
	"github.com/jppf-project/site/internal/services/site/platform/weberror"
	"github.com/jppf-project/site/internal/services/site/templates"
)

type handlers struct {
	service service
	logger  *log.Logger
}

func (h handlers) handleDirectory(w http.ResponseWriter, r *http.Request) {
	loc, lang := i18n.ResolveLocalizer(w, r)
	groups, err := h.service.loadDirectory(httpx.RequestContext(r))
	if err != nil {
		h.logger.Printf("links directory read failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		weberror.WriteError(w, r, err, loc, lang)
		return
	}
	page := pagerender.Page{
		Title:    templates.T(loc, "links.title"),
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.LinkDirectory(groups, loc),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		h.logger.Printf("links directory render failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		weberror.WriteError(w, r, err, loc, lang)
	}
}
