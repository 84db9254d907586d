// Command hashbench-compare runs the hashbench sweep once per registered map
// implementation. Every table is pre-sized to the dataset and a GC runs
// before each size, so implementations start from the same heap state.
// All tables see the same datasets. It takes no arguments.
package main

import (
	"math/rand/v2"
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

	seed := rand.Uint64() | 1
	for _, spec := range hashbench.Tables() {
		b, err := hashbench.New(
			hashbench.WithTable(spec),
			hashbench.WithPresize(),
			hashbench.WithGC(),
			hashbench.WithSeed(seed),
			hashbench.WithLogger(log),
		)
		if err != nil {
			log.Fatal().Err(err).Str("table", spec.Name).Msg("configure")
		}
		if _, err := b.Run(os.Stdout); err != nil {
			log.Fatal().Err(err).Str("table", spec.Name).Msg("run")
		}
	}
}
