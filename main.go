package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"minimax/config"
	"minimax/experiments"
)

func main() {
	path := flag.String("config", "", "Path to a YAML config file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	c, err := config.Load(*path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(c.Level())

	log.Info().Msgf("running %s on the %s game", c.Mode, c.Game)
	if err := experiments.Run(c); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", c.Mode)
	}
	log.Info().Msgf("finished %s", c.Mode)
}
