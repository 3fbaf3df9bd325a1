package slideshow

import (
	"strconv"
	"strings"
)

// Bounds is a session's slide range, fixed when the session first views the
// slideshow.
type Bounds struct {
	First int
	Last  int
}

// DefaultBounds covers slides img0 through img20.
var DefaultBounds = Bounds{First: 0, Last: 20}

// Contains reports whether index lies within the bounds.
func (b Bounds) Contains(index int) bool {
	return index >= b.First && index <= b.Last
}

// Control is one navigation affordance and the slide it leads to.
type Control struct {
	Enabled bool
	Target  int
}

// Controls holds the four navigation affordances.
type Controls struct {
	First Control
	Prev  Control
	Next  Control
	Last  Control
}

// ParseRequestedIndex reads the requested slide index. Absent or
// non-numeric input recovers to 0.
func ParseRequestedIndex(raw string) int {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return index
}

// Resolve returns the effective index. Out-of-range requests are kept as-is;
// the rendered view flags them instead of clamping.
func Resolve(requested int) int {
	return requested
}

// ComputeControls enables first/prev above the first slide and next/last
// below the last one.
func ComputeControls(index int, bounds Bounds) Controls {
	back := index > bounds.First
	forward := index < bounds.Last
	return Controls{
		First: Control{Enabled: back, Target: bounds.First},
		Prev:  Control{Enabled: back, Target: index - 1},
		Next:  Control{Enabled: forward, Target: index + 1},
		Last:  Control{Enabled: forward, Target: bounds.Last},
	}
}

// SlideName returns the image name for a slide index.
func SlideName(index int) string {
	return "img" + strconv.Itoa(index)
}
