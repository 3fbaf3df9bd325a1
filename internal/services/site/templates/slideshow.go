package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// SlideControlView is one navigation affordance. Disabled controls render
// as static placeholders.
type SlideControlView struct {
	Name     string
	Enabled  bool
	Href     string
	ImageURL string
}

// SlideshowView carries everything the slideshow fragment displays.
type SlideshowView struct {
	Index      int
	Controls   []SlideControlView
	SlideURL   string
	PDFURL     string
	OutOfRange bool
}

// Slideshow renders the navigation controls, the current slide image, and
// the optional PDF notice.
func Slideshow(view SlideshowView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		index := strconv.Itoa(view.Index)
		var b strings.Builder
		b.WriteString(`<section class="slideshow" data-slide-index="`)
		b.WriteString(index)
		b.WriteString(`"`)
		if view.OutOfRange {
			b.WriteString(` data-out-of-range="true"`)
		}
		b.WriteString(`><nav class="slideshow-nav">`)
		for _, control := range view.Controls {
			writeSlideControl(&b, control, loc)
		}
		b.WriteString(`</nav><figure class="slideshow-slide"><img src="`)
		b.WriteString(href(view.SlideURL))
		b.WriteString(`" alt="`)
		b.WriteString(text(T(loc, "slideshow.slide_alt", view.Index)))
		b.WriteString(`"></figure>`)
		if view.OutOfRange {
			b.WriteString(`<p class="slideshow-out-of-range" role="status">`)
			b.WriteString(text(T(loc, "slideshow.out_of_range", view.Index)))
			b.WriteString(`</p>`)
		}
		if pdf := strings.TrimSpace(view.PDFURL); pdf != "" {
			b.WriteString(`<p class="slideshow-pdf">`)
			b.WriteString(text(T(loc, "slideshow.pdf_notice")))
			b.WriteString(` <a href="`)
			b.WriteString(href(pdf))
			b.WriteString(`">`)
			b.WriteString(text(T(loc, "slideshow.pdf_link")))
			b.WriteString(`</a>.</p>`)
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSlideControl(b *strings.Builder, control SlideControlView, loc Localizer) {
	name := text(control.Name)
	img := `<img src="` + href(control.ImageURL) + `" alt="` + text(T(loc, "slideshow.nav."+control.Name)) + `">`
	if control.Enabled {
		b.WriteString(`<a class="slideshow-control" data-control="`)
		b.WriteString(name)
		b.WriteString(`" href="`)
		b.WriteString(href(control.Href))
		b.WriteString(`">`)
		b.WriteString(img)
		b.WriteString(`</a>`)
		return
	}
	b.WriteString(`<span class="slideshow-control" data-control="`)
	b.WriteString(name)
	b.WriteString(`" aria-disabled="true">`)
	b.WriteString(img)
	b.WriteString(`</span>`)
}
