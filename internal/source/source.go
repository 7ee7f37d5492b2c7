// Package source produces the points fed into a quadtree.
package source

import (
	"math/rand"

	"github.com/suxatcode/quadtree/quadtree"
)

// PointSource is a possibly endless stream of points.
//
//go:generate mockgen -destination source_mock.go -package source . PointSource
type PointSource interface {
	Next() quadtree.Point
}

// UniformSource draws both coordinates independently and uniformly from
// [0, 1).
type UniformSource struct {
	RandomFloat func() float64
}

// NewUniformSource returns a UniformSource backed by its own generator
// seeded with seed.
func NewUniformSource(seed int64) *UniformSource {
	rnd := rand.New(rand.NewSource(seed))
	return &UniformSource{RandomFloat: rnd.Float64}
}

func (s *UniformSource) Next() quadtree.Point {
	if s.RandomFloat == nil {
		s.RandomFloat = func() float64 { return rand.Float64() }
	}
	return quadtree.NewPoint(s.RandomFloat(), s.RandomFloat())
}
