package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const (
	errorTitleNotFoundKey    = "errors.title.not_found"
	errorTitleUnavailableKey = "errors.title.unavailable"
	errorTitleUnknownKey     = "errors.title.unknown"
)

// ErrorPageTitle returns the browser page title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	switch statusCode {
	case http.StatusNotFound:
		return T(loc, errorTitleNotFoundKey)
	case http.StatusServiceUnavailable:
		return T(loc, errorTitleUnavailableKey)
	default:
		return T(loc, errorTitleUnknownKey)
	}
}

// ErrorState renders a user-safe error fragment. message must already be
// public copy; causes are never passed here.
func ErrorState(statusCode int, message string, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="error-state" data-status="`)
		b.WriteString(strconv.Itoa(statusCode))
		b.WriteString(`"><h1>`)
		b.WriteString(text(ErrorPageTitle(statusCode, loc)))
		b.WriteString(`</h1><p>`)
		b.WriteString(text(message))
		b.WriteString(`</p></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
