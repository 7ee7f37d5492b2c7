package quadtree

import "github.com/quartercastle/vector"

// Rect is an axis aligned region. Width and Height are expected to be
// non-negative, this is not checked.
type Rect struct {
	X, Y, Width, Height float64
}

// DefaultBounds is the region covered by every root created with
// NewQuadTree: [-1, 1) x [-1, 1).
var DefaultBounds = Rect{X: -1, Y: -1, Width: 2, Height: 2}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Contains is half-open: lower edges are inside, upper edges are not. Two
// rectangles sharing an edge therefore never both contain a point on it.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X() && p.X() < r.X+r.Width &&
		r.Y <= p.Y() && p.Y() < r.Y+r.Height
}

func (r Rect) Center() vector.Vector {
	return vector.Vector{r.X + r.Width/2, r.Y + r.Height/2}
}

// Quadrant returns the bounds of child i of a node covering r:
// 0 top left, 1 top right, 2 bottom left, 3 bottom right.
func (r Rect) Quadrant(i int) Rect {
	halfWidth := r.Width / 2
	halfHeight := r.Height / 2
	q := Rect{X: r.X, Y: r.Y, Width: halfWidth, Height: halfHeight}
	if i&1 != 0 {
		q.X = r.X + halfWidth
	}
	if i&2 != 0 {
		q.Y = r.Y + halfHeight
	}
	return q
}

// divisible reports whether the quadrants of r tile it exactly in float64:
// both midpoints lie strictly inside r and the upper quadrants end on the
// upper edges of r. It fails once r is down to a few ulps.
func (r Rect) divisible() bool {
	midX, midY := r.X+r.Width/2, r.Y+r.Height/2
	return r.X < midX && midX < r.X+r.Width && midX+r.Width/2 == r.X+r.Width &&
		r.Y < midY && midY < r.Y+r.Height && midY+r.Height/2 == r.Y+r.Height
}
