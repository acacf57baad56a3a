// Package core provides the terminal-independent pieces of the player: a
// styled character buffer, screen geometry and the semantic actions keys
// map to. It has no Bubble Tea dependency.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centered in an outerW x outerH area.
// Content larger than the area is pinned to the top-left corner.
func Centered(outerW, outerH, w, h int) Rect {
	return Rect{
		X: max((outerW-w)/2, 0),
		Y: max((outerH-h)/2, 0),
		W: w,
		H: h,
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Window returns the half-open range [first, last) of a size-row view over
// n items that keeps cursor near the middle.
func Window(cursor, n, size int) (first, last int) {
	first = Clamp(cursor-size/2, 0, max(n-size, 0))
	return first, min(n, first+size)
}
