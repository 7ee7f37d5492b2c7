package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/suxatcode/quadtree/internal/harness"
	"github.com/suxatcode/quadtree/internal/source"
	"github.com/suxatcode/quadtree/quadtree"
)

type Config struct {
	Production bool `env:"PRODUCTION" envDefault:"false"`
	// Levels are {trace, debug, info, warn, error, fatal, panic}.
	// See github.com/rs/zerolog@v1.19.0/log.go for possible values.
	LogLevel string `env:"LOGLEVEL" envDefault:"info"`
	Capacity int    `env:"QUADTREE_CAPACITY" envDefault:"50"`
	Points   int    `env:"QUADTREE_POINTS" envDefault:"1000000"`
	// Seed 0 seeds the point source from the current time
	Seed int64 `env:"QUADTREE_SEED" envDefault:"0"`
	// Timeout 0 disables the timeout
	Timeout time.Duration `env:"QUADTREE_TIMEOUT" envDefault:"0s"`
	// PNG is the path of a rendering of the final tree, empty disables it
	PNG     string `env:"QUADTREE_PNG" envDefault:""`
	PNGSize int    `env:"QUADTREE_PNG_SIZE" envDefault:"1024"`
}

// ParseEnvConfig reads Config from the environment, unset variables take
// their envDefault.
func ParseEnvConfig() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(err, "failed to parse environment")
	}
	return conf, nil
}

// SetupLogging configures the global zerolog logger from conf.
func SetupLogging(conf Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		println("failed to parse LogLevel: '" + conf.LogLevel + "', setting to debug")
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if !conf.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// Run builds a tree with the configured capacity, fills it from a uniform
// point source and writes the resulting depth to out.
func Run(ctx context.Context, conf Config, out io.Writer) (harness.Stats, error) {
	qt, err := quadtree.NewQuadTree(conf.Capacity)
	if err != nil {
		return harness.Stats{}, errors.Wrap(err, "invalid QUADTREE_CAPACITY")
	}
	if conf.Points < 0 {
		return harness.Stats{}, errors.Errorf("invalid QUADTREE_POINTS: %d", conf.Points)
	}
	if conf.PNG != "" && conf.PNGSize < 1 {
		return harness.Stats{}, errors.Errorf("invalid QUADTREE_PNG_SIZE: %d", conf.PNGSize)
	}
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}
	logger := log.With().Int("capacity", conf.Capacity).Int64("seed", seed).Logger()
	ctx = logger.WithContext(ctx)
	logger.Info().Msgf("inserting %d points", conf.Points)

	stats := harness.Run(ctx, qt, source.NewUniformSource(seed), conf.Points)
	logger.Info().Msgf(
		"stats{inserted: %d, discarded: %d, depth: %d, leaves: %d, branches: %d, time: %d ms}",
		stats.Inserted, stats.Discarded, stats.MaxDepth, stats.Tree.Leaves, stats.Tree.Branches,
		stats.TotalTime.Milliseconds(),
	)
	if conf.PNG != "" {
		if err := quadtree.DrawPNG(qt, conf.PNG, conf.PNGSize, false); err != nil {
			return stats, errors.Wrapf(err, "failed to write '%s'", conf.PNG)
		}
		logger.Info().Msgf("wrote %s", conf.PNG)
	}
	if _, err := fmt.Fprintln(out, stats.MaxDepth); err != nil {
		return stats, errors.Wrap(err, "failed to write depth")
	}
	return stats, nil
}
