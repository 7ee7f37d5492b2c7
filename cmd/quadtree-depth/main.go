/*
 * quadtree-depth fills a quadtree with uniformly distributed random points
 * and prints its maximum depth on stdout. It is configured through the
 * environment, see internal/app.Config.
 */
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/suxatcode/quadtree/internal/app"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Msgf("%v", err)
	}
}

func run() error {
	conf, err := app.ParseEnvConfig()
	if err != nil {
		app.SetupLogging(app.Config{LogLevel: "info"})
		return err
	}
	app.SetupLogging(conf)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	_, err = app.Run(ctx, conf, os.Stdout)
	return err
}
