package slideshow

import (
	"strings"

	"github.com/jppf-project/site/internal/services/site/routepath"
	"github.com/jppf-project/site/internal/services/site/templates"
)

// Deck locates the slide images and the downloadable presentation.
type Deck struct {
	BaseURL string
	Ext     string
	PDFURL  string
	Bounds  Bounds
}

// DefaultDeck matches the published overview presentation.
func DefaultDeck() Deck {
	return Deck{
		BaseURL: "/overview/",
		Ext:     ".gif",
		PDFURL:  "/documents/JPPF-Presentation.pdf",
		Bounds:  DefaultBounds,
	}
}

func (d Deck) normalized() Deck {
	d.BaseURL = strings.TrimSpace(d.BaseURL)
	if d.BaseURL != "" && !strings.HasSuffix(d.BaseURL, "/") {
		d.BaseURL += "/"
	}
	d.Ext = strings.TrimSpace(d.Ext)
	if d.Ext != "" && !strings.HasPrefix(d.Ext, ".") {
		d.Ext = "." + d.Ext
	}
	d.PDFURL = strings.TrimSpace(d.PDFURL)
	return d
}

func (d Deck) imageURL(name string) string {
	return d.BaseURL + name + d.Ext
}

// view assembles the renderer input: controls in first, prev, next, last
// order, each shown with its active ("1") or inactive ("0") image.
func (d Deck) view(index int, bounds Bounds, controls Controls) templates.SlideshowView {
	named := []struct {
		name    string
		control Control
	}{
		{name: "first", control: controls.First},
		{name: "prev", control: controls.Prev},
		{name: "next", control: controls.Next},
		{name: "last", control: controls.Last},
	}
	views := make([]templates.SlideControlView, 0, len(named))
	for _, entry := range named {
		state := "0"
		href := ""
		if entry.control.Enabled {
			state = "1"
			href = routepath.PresentationSlide(entry.control.Target)
		}
		views = append(views, templates.SlideControlView{
			Name:     entry.name,
			Enabled:  entry.control.Enabled,
			Href:     href,
			ImageURL: d.imageURL(entry.name + state),
		})
	}
	return templates.SlideshowView{
		Index:      index,
		Controls:   views,
		SlideURL:   d.imageURL(SlideName(index)),
		PDFURL:     d.PDFURL,
		OutOfRange: !bounds.Contains(index),
	}
}
