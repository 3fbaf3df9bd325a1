// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/jppf-project/site/internal/services/site/platform/httpx"
	"github.com/jppf-project/site/internal/services/site/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	Lang       string
	Loc        templates.Localizer
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders the page fully before writing, so a failed render never
// leaves a partial fragment on the wire. HTMX requests receive only the
// fragment; other requests receive it inside the document layout.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		layout := templates.Page(page.Title, page.Lang, page.Loc)
		if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	}
	if r != nil && r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusCode)
		return nil
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}
