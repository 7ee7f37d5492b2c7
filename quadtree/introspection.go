package quadtree

func (qt *QuadTree) IsLeaf() bool { return qt.children == nil }
func (qt *QuadTree) Bounds() Rect { return qt.bounds }
func (qt *QuadTree) Capacity() int { return qt.capacity }

// Points returns a copy of the points held directly by qt in insertion
// order. It is empty for a branch.
func (qt *QuadTree) Points() []Point {
	points := make([]Point, len(qt.points))
	copy(points, qt.points)
	return points
}

// Children returns the four children of a branch, ordered top left, top
// right, bottom left, bottom right, or nil for a leaf.
func (qt *QuadTree) Children() []*QuadTree {
	if qt.children == nil {
		return nil
	}
	children := make([]*QuadTree, len(qt.children))
	for i := range qt.children {
		children[i] = &qt.children[i]
	}
	return children
}

// Walk visits qt and its descendants in pre-order. The root has depth 1.
// Returning false from fn skips the children of that node.
func (qt *QuadTree) Walk(fn func(node *QuadTree, depth int) bool) {
	qt.walk(fn, 1)
}

func (qt *QuadTree) walk(fn func(*QuadTree, int) bool, depth int) {
	if !fn(qt, depth) || qt.children == nil {
		return
	}
	for i := range qt.children {
		qt.children[i].walk(fn, depth+1)
	}
}

// Len returns the number of points stored in the subtree.
func (qt *QuadTree) Len() int {
	n := 0
	qt.Walk(func(node *QuadTree, _ int) bool {
		n += len(node.points)
		return true
	})
	return n
}

// AllPoints collects the points of every leaf, leaves visited in pre-order.
func (qt *QuadTree) AllPoints() []Point {
	points := make([]Point, 0, qt.Len())
	qt.Walk(func(node *QuadTree, _ int) bool {
		points = append(points, node.points...)
		return true
	})
	return points
}

type TreeStats struct {
	Depth         int
	Branches      int
	Leaves        int
	Points        int
	MaxLeafPoints int
}

func (qt *QuadTree) Stats() TreeStats {
	stats := TreeStats{}
	qt.Walk(func(node *QuadTree, depth int) bool {
		stats.Depth = max(stats.Depth, depth)
		if node.children != nil {
			stats.Branches++
			return true
		}
		stats.Leaves++
		stats.Points += len(node.points)
		stats.MaxLeafPoints = max(stats.MaxLeafPoints, len(node.points))
		return true
	})
	return stats
}
