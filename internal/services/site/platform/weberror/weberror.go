// Package weberror renders user-safe error responses for site modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/jppf-project/site/internal/services/site/platform/errors"
	"github.com/jppf-project/site/internal/services/site/platform/pagerender"
	"github.com/jppf-project/site/internal/services/site/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. The wrapped
// cause is never part of the result.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteError writes a localized error response for full-page and HTMX requests.
func WriteError(w http.ResponseWriter, r *http.Request, err error, loc templates.Localizer, lang string) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	message := PublicMessage(loc, err)
	if !ShouldRenderErrorPage(statusCode) {
		http.Error(w, message, statusCode)
		return
	}

	page := pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		Lang:       lang,
		Loc:        loc,
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, message, loc),
	}
	if renderErr := pagerender.WritePage(w, r, page); renderErr != nil {
		http.Error(w, message, statusCode)
	}
}
