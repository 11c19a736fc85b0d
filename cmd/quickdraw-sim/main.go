package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/automoto/quickdraw/headless"
	"github.com/automoto/quickdraw/shared/tuning"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	rounds := flag.Int("rounds", 100, "number of rounds to simulate")
	difficulty := flag.String("difficulty", "normal", "bot reflexes: easy, normal or hard")
	tps := flag.Int("tps", 60, "simulated frames per second")
	seed := flag.Uint64("seed", 0, "random seed (0 = random)")
	realtime := flag.Bool("realtime", false, "run at wall-clock speed instead of as fast as possible")
	configPath := flag.String("config", "", "optional YAML tuning file")
	debug := flag.Bool("debug", false, "log every round transition")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	t, err := tuning.Load(tuning.Defaults(), *configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid tuning")
	}

	d, err := headless.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid difficulty")
	}

	sim, err := headless.NewSimulator(t.Timing(), headless.Presets[d], headless.Options{
		TickRate: *tps,
		Seed:     *seed,
		Logger:   log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create simulator")
	}

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		loop := headless.NewLoop(clockwork.NewRealClock(), *tps, func() {
			sim.Step()
			if sim.Tally().Rounds >= *rounds {
				cancel()
			}
		})
		_ = loop.Run(ctx)
	} else {
		sim.RunRounds(*rounds)
	}
	sim.Stop()

	tally := sim.Tally()
	fmt.Printf("difficulty:    %s\n", d)
	fmt.Printf("rounds:        %d (%s simulated)\n", tally.Rounds, sim.Elapsed())
	fmt.Printf("wins/losses:   %d/%d (%.1f%%)\n", tally.Wins, tally.Losses, tally.WinRate()*100)
	fmt.Printf("early strikes: %d\n", tally.Early)
	fmt.Printf("best streak:   %d\n", tally.BestStreak)
	fmt.Printf("reaction:      best %s, mean %s\n", tally.BestReaction, tally.MeanReaction())
}
