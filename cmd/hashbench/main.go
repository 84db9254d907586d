// Command hashbench times insertion, lookup and deletion on Go's built-in map
// for dataset sizes 50000, 100000, ... 1000000 and prints the elapsed seconds
// of each phase on stdout. It takes no arguments.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/llxisdsh/hashbench"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()

	b, err := hashbench.New(hashbench.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("configure")
	}
	if _, err := b.Run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
