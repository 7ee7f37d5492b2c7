// Package quadtree implements a point quadtree over a fixed region of the
// plane. A node is either a leaf holding points or a branch holding four
// children; a leaf turns into a branch once it is full and never turns back.
//
// A QuadTree is not safe for concurrent use.
package quadtree

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type QuadTreeConfig struct {
	CapacityOfEachBlock int
}

var QUADTREE_DEFAULT_CONFIG = QuadTreeConfig{CapacityOfEachBlock: 50}

var ErrInvalidCapacity = errors.New("quadtree capacity must be at least 1")

type QuadTree struct {
	bounds   Rect
	capacity int
	// points is only used while the node is a leaf
	points []Point
	// children is nil for a leaf
	children *[4]QuadTree
}

// NewQuadTree returns an empty tree covering DefaultBounds whose leaves
// split once they hold capacity points.
func NewQuadTree(capacity int) (*QuadTree, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	qt := newLeaf(DefaultBounds, capacity)
	return &qt, nil
}

// NewQuadTreeFromConfig is NewQuadTree with the capacity taken from conf. A
// nil conf selects QUADTREE_DEFAULT_CONFIG.
func NewQuadTreeFromConfig(conf *QuadTreeConfig) (*QuadTree, error) {
	if conf == nil {
		conf = &QUADTREE_DEFAULT_CONFIG
	}
	return NewQuadTree(conf.CapacityOfEachBlock)
}

func newLeaf(bounds Rect, capacity int) QuadTree {
	return QuadTree{
		bounds:   bounds,
		capacity: capacity,
		points:   make([]Point, 0, capacity),
	}
}

// AddPoint stores p in the leaf whose quadrant contains it. Points outside
// the tree's bounds are dropped without notice.
func (qt *QuadTree) AddPoint(p Point) {
	qt.Insert(p)
}

// Insert is AddPoint, but reports whether p was inside the bounds of qt and
// therefore stored.
//
// A full leaf whose bounds are too small to be halved in float64 keeps the
// point anyway, so many copies of one position stay in a single deep leaf.
func (qt *QuadTree) Insert(p Point) bool {
	if !qt.bounds.Contains(p) {
		return false
	}
	if qt.children != nil {
		// children tile qt.bounds, at most one of them takes p
		for i := range qt.children {
			if qt.children[i].Insert(p) {
				return true
			}
		}
		return false
	}
	if len(qt.points) < qt.capacity || !qt.bounds.divisible() {
		qt.points = append(qt.points, p)
		return true
	}
	qt.split()
	return qt.Insert(p)
}

// split turns the leaf qt into a branch and moves its points down into the
// four new children. qt.bounds must be divisible.
func (qt *QuadTree) split() {
	if qt.children != nil {
		panic(errors.Errorf("split of branch node %+v", qt.bounds))
	}
	if !qt.bounds.divisible() {
		panic(errors.Errorf("split of indivisible bounds %+v", qt.bounds))
	}
	children := [4]QuadTree{
		newLeaf(qt.bounds.Quadrant(0), qt.capacity), // Top Left
		newLeaf(qt.bounds.Quadrant(1), qt.capacity), // Top Right
		newLeaf(qt.bounds.Quadrant(2), qt.capacity), // Bottom Left
		newLeaf(qt.bounds.Quadrant(3), qt.capacity), // Bottom Right
	}
	for _, p := range qt.points {
		stored := false
		for i := range children {
			if stored = children[i].Insert(p); stored {
				break
			}
		}
		if !stored {
			panic(errors.Errorf("point %v of %+v fits no quadrant", p, qt.bounds))
		}
	}
	qt.children = &children
	qt.points = nil
}

// MaxDepth returns the number of levels of the tree, 1 for a single leaf.
func (qt *QuadTree) MaxDepth() int {
	if qt.children == nil {
		return 1
	}
	depth := 0
	for i := range qt.children {
		depth = max(depth, qt.children[i].MaxDepth())
	}
	return depth + 1
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
