// Package harness feeds points from a source into a quadtree and reports on
// the result.
package harness

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/suxatcode/quadtree/internal/source"
	"github.com/suxatcode/quadtree/quadtree"
)

type Stats struct {
	Requested int
	Inserted  int
	// Discarded counts points outside the bounds of the tree
	Discarded int
	MaxDepth  int
	Tree      quadtree.TreeStats
	TotalTime time.Duration
}

// Run inserts n points drawn from src into qt. It stops early when ctx is
// done; Requested then tells how many points were actually drawn.
func Run(ctx context.Context, qt *quadtree.QuadTree, src source.PointSource, n int) Stats {
	stats := Stats{}
	startTime := time.Now()
insertion:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			log.Ctx(ctx).Warn().Msgf("insertion cancelled after %d of %d points: %v", i, n, ctx.Err())
			break insertion
		default:
			// continue inserting
		}
		stats.Requested++
		if qt.Insert(src.Next()) {
			stats.Inserted++
		} else {
			stats.Discarded++
		}
	}
	stats.TotalTime = time.Since(startTime)
	stats.MaxDepth = qt.MaxDepth()
	stats.Tree = qt.Stats()
	log.Ctx(ctx).Debug().Msgf(
		"inserted %d points (%d discarded) in %d ms, depth %d",
		stats.Inserted, stats.Discarded, stats.TotalTime.Milliseconds(), stats.MaxDepth,
	)
	return stats
}
