package templates

import (
	"strings"

	"github.com/a-h/templ"
)

// text escapes s for element content and attribute values.
func text(s string) string {
	return templ.EscapeString(s)
}

// href sanitizes a link target and escapes it for an attribute value.
func href(raw string) string {
	return templ.EscapeString(string(templ.URL(strings.TrimSpace(raw))))
}
