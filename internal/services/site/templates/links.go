package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// LinkView is one rendered directory entry.
type LinkView struct {
	ID          int64
	URL         string
	Title       string
	Description string
}

// LinkGroupView is one directory group with its ordered links.
type LinkGroupView struct {
	ID          int64
	Description string
	Links       []LinkView
}

// LinkDirectory renders groups in the given order, each as a header followed
// by its links as "title: description". A group without links keeps its
// header and an empty list.
func LinkDirectory(groups []LinkGroupView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="link-directory"><h1>`)
		b.WriteString(text(T(loc, "links.heading")))
		b.WriteString(`</h1>`)
		for _, group := range groups {
			writeLinkGroup(&b, group)
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeLinkGroup(b *strings.Builder, group LinkGroupView) {
	b.WriteString(`<section class="link-group" data-group-id="`)
	b.WriteString(strconv.FormatInt(group.ID, 10))
	b.WriteString(`"><h2 class="link-group-header">`)
	b.WriteString(text(group.Description))
	b.WriteString(`</h2><ul class="link-group-links">`)
	for _, link := range group.Links {
		b.WriteString(`<li data-link-id="`)
		b.WriteString(strconv.FormatInt(link.ID, 10))
		b.WriteString(`"><span class="link-title"><a href="`)
		b.WriteString(href(link.URL))
		b.WriteString(`">`)
		b.WriteString(text(link.Title))
		b.WriteString(`</a>:</span> `)
		b.WriteString(text(link.Description))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></section>`)
}
