package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Contains reports whether the terminal cell (cx, cy) falls inside the panel
// for a terminal of the given size.
func (p Panel) Contains(width, height, cx, cy int) bool {
	if p.Bounds == nil {
		return false
	}
	x, y, w, h := p.Bounds(width, height)
	return cx >= x && cx < x+w && cy >= y && cy < y+h
}
