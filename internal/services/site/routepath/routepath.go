// Package routepath stores canonical HTTP paths for the site.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root         = "/"
	Health       = "/up"
	Links        = "/links"
	Presentation = "/presentation"

	// CurrentSlideParam is the query parameter carrying the requested slide index.
	CurrentSlideParam = "current"
)

// PresentationSlide returns the slideshow path for a slide index.
func PresentationSlide(index int) string {
	values := url.Values{}
	values.Set(CurrentSlideParam, strconv.Itoa(index))
	return Presentation + "?" + values.Encode()
}
