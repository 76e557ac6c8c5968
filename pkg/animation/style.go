// Package animation defines the presentation styles that tag structural
// table updates.
//
// The library never interprets a style. Styles exist so that a batch of
// changes can be grouped per style and handed to the rendering surface
// verbatim; what "fade" or "slide from the top" looks like is entirely the
// surface's business.
package animation

// Style identifies how a rendering surface should present a structural
// change (a row or section appearing, disappearing, or refreshing).
type Style int

const (
	// None applies the change without animating it.
	None Style = iota
	// Fade fades the affected rows or sections in or out.
	Fade
	// SlideTop slides from or toward the top edge of the view.
	SlideTop
	// SlideBottom slides from or toward the bottom edge of the view.
	SlideBottom
	// SlideLeft slides from or toward the left edge of the view.
	SlideLeft
	// SlideRight slides from or toward the right edge of the view.
	SlideRight
	// Middle collapses or expands the change around its vertical center.
	Middle
	// Automatic lets the rendering surface choose an appropriate style.
	Automatic
)

func (s Style) String() string {
	switch s {
	case None:
		return "none"
	case Fade:
		return "fade"
	case SlideTop:
		return "slideTop"
	case SlideBottom:
		return "slideBottom"
	case SlideLeft:
		return "slideLeft"
	case SlideRight:
		return "slideRight"
	case Middle:
		return "middle"
	case Automatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// ParseStyle maps a style name, as written in scenario files, back to its
// Style. The second return value reports whether the name was recognized.
func ParseStyle(name string) (Style, bool) {
	for s := None; s <= Automatic; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return None, false
}
