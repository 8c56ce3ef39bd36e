package overlay

// Rect is a rectangle in character cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Place positions a block of size (w, h) relative to an anchor cell inside
// a viewport of size (viewW, viewH). The block opens on the row below the
// anchor, left-aligned with it; it flips above the anchor when it would
// run off the bottom, and is pulled left when it would run off the right
// edge. The result is clamped to the viewport so the block stays fully
// visible whenever it fits at all.
func Place(anchorX, anchorY, w, h, viewW, viewH int) Rect {
	x := anchorX
	y := anchorY + 1

	if x+w > viewW {
		x = viewW - w
	}
	if x < 0 {
		x = 0
	}

	if y+h > viewH {
		above := anchorY - h
		if above >= 0 {
			y = above
		} else {
			y = viewH - h
		}
	}
	if y < 0 {
		y = 0
	}

	return Rect{X: x, Y: y, Width: w, Height: h}
}
