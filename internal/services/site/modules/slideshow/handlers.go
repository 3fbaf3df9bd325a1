package slideshow

import (
	"log"
	"net/http"

	"github.com/jppf-project/site/internal/services/site/i18n"
	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/platform/pagerender"
	"github.com/jppf-project/site/internal/services/site/platform/sessioncookie"
	"github.com/jppf-project/site/internal/services/site/platform/weberror"
	"github.com/jppf-project/site/internal/services/site/routepath"
	"github.com/jppf-project/site/internal/services/site/storage"
	"github.com/jppf-project/site/internal/services/site/templates"
)

type handlers struct {
	sessions storage.SessionValueStore
	deck     Deck
	logger   *log.Logger
}

func (h handlers) handleSlideshow(w http.ResponseWriter, r *http.Request) {
	loc, lang := i18n.ResolveLocalizer(w, r)
	bounds := h.sessionBounds(w, r)
	index := Resolve(ParseRequestedIndex(r.URL.Query().Get(routepath.CurrentSlideParam)))
	controls := ComputeControls(index, bounds)

	page := pagerender.Page{
		Title:    templates.T(loc, "slideshow.title"),
		Lang:     lang,
		Loc:      loc,
		Fragment: templates.Slideshow(h.deck.view(index, bounds, controls), loc),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		h.logger.Printf("slideshow render failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		weberror.WriteError(w, r, err, loc, lang)
	}
}

// sessionBounds reads the visitor's bounds. Session store failures degrade
// to the deck defaults so the slideshow keeps rendering.
func (h handlers) sessionBounds(w http.ResponseWriter, r *http.Request) Bounds {
	sessionID, _, err := sessioncookie.Ensure(w, r)
	if err != nil {
		h.logger.Printf("slideshow session id failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		return h.deck.Bounds
	}
	bounds, err := loadBounds(httpx.RequestContext(r), h.sessions, sessionID, h.deck.Bounds)
	if err != nil {
		h.logger.Printf("slideshow session bounds failed request_id=%s err=%v", httpx.RequestIDFrom(r), err)
		return h.deck.Bounds
	}
	return bounds
}
