package quadtree

import (
	"strconv"

	"github.com/quartercastle/vector"
)

// Point is a position in the plane. Vel is carried along with the point but
// nothing in this package reads or updates it.
type Point struct {
	Pos vector.Vector
	Vel vector.Vector
}

// NewPoint returns a point at (x, y) with zero velocity.
func NewPoint(x, y float64) Point {
	return Point{Pos: vector.Vector{x, y}, Vel: vector.Vector{0, 0}}
}

func (p Point) X() float64 { return p.Pos.X() }
func (p Point) Y() float64 { return p.Pos.Y() }

func (p Point) String() string {
	return "[" + strconv.FormatFloat(p.X(), 'f', -1, 64) + "," + strconv.FormatFloat(p.Y(), 'f', -1, 64) + "]"
}
