package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Page wraps child content in the minimal document shell. The real site
// chrome (menu and header) lives outside this service.
func Page(title string, lang string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			lang = "en-US"
		}
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="`)
		b.WriteString(text(lang))
		b.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(text(pageTitle(title, loc)))
		b.WriteString(`</title></head><body><a class="skip-link" href="#main">`)
		b.WriteString(text(T(loc, "core.skip_to_content")))
		b.WriteString(`</a><main id="main">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func pageTitle(title string, loc Localizer) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return T(loc, "core.site_name")
	}
	return T(loc, "core.page_title", title)
}
