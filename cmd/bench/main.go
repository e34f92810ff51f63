package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/renproject/xrand"
	"github.com/renproject/xrand/xoroshiro"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
	w.Out = os.Stderr
	w.TimeFormat = "15:04:05.000"
})).With().Timestamp().Logger()

type config struct {
	seed       uint64
	seedSet    bool
	engineName string
	workers    int
	draws      int
	report     string
	cpuProfile bool
}

func main() {
	var cfg config
	flag.Uint64Var(&cfg.seed, "seed", 0, "root seed, unset picks a clock based seed")
	flag.StringVar(&cfg.engineName, "engine", "", "engine to benchmark, empty for all of "+strings.Join(xoroshiro.Names(), ", "))
	flag.IntVar(&cfg.workers, "workers", 4, "goroutines per engine, each with its own forked source")
	flag.IntVar(&cfg.draws, "draws", 1_000_000, "draws per goroutine and operation")
	flag.StringVar(&cfg.report, "report", "", "write the result table to this file")
	flag.BoolVar(&cfg.cpuProfile, "profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})

	// Exit after run returns so that the profile is flushed.
	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("benchmark failed")
	}
}

func run(cfg config) error {
	if cfg.cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	root := rootSource(cfg)
	names := xoroshiro.Names()
	if cfg.engineName != "" {
		names = []string{cfg.engineName}
	}

	results := make([]result, 0, len(names)*len(operations))
	for _, name := range names {
		engine, err := xoroshiro.New(name, root.Uint64())
		if err != nil {
			return fmt.Errorf("creating engine %v: %w", name, err)
		}

		engineResults, err := benchEngine(context.Background(), xrand.New(engine), cfg.workers, cfg.draws)
		if err != nil {
			return fmt.Errorf("engine %v: %w", name, err)
		}

		for _, r := range engineResults {
			log.Info().
				Str("engine", name).
				Str("op", r.op).
				Int("workers", cfg.workers).
				Dur("elapsed", r.elapsed).
				Float64("ns/op", r.nsPerOp()).
				Msg("done")
		}
		results = append(results, engineResults...)
	}

	if cfg.report != "" {
		if err := reportResults(results, cfg.report); err != nil {
			return fmt.Errorf("writing report %v: %w", cfg.report, err)
		}
	}
	return nil
}

// rootSource returns the source that seeds every engine, the explicit seed
// when one was given, zero included.
func rootSource(cfg config) *xrand.Source {
	if cfg.seedSet {
		return xrand.NewSource(cfg.seed)
	}
	return xrand.NewDefault()
}

type operation struct {
	name string
	run  func(src *xrand.Source, n int) error
}

var operations = []operation{
	{"uint64", func(src *xrand.Source, n int) error {
		for i := 0; i < n; i++ {
			src.Uint64()
		}
		return nil
	}},
	{"intn", func(src *xrand.Source, n int) error {
		for i := 0; i < n; i++ {
			if _, err := src.Intn(1000); err != nil {
				return err
			}
		}
		return nil
	}},
	{"float64", func(src *xrand.Source, n int) error {
		for i := 0; i < n; i++ {
			src.Float64()
		}
		return nil
	}},
	{"gaussian", func(src *xrand.Source, n int) error {
		for i := 0; i < n; i++ {
			src.Gaussian()
		}
		return nil
	}},
	{"shuffle64", func(src *xrand.Source, n int) error {
		deck := make([]int, 64)
		for i := range deck {
			deck[i] = i
		}
		for i := 0; i < n/64; i++ {
			xrand.Shuffle(src, deck)
		}
		return nil
	}},
}

type result struct {
	engine  string
	op      string
	draws   int
	elapsed time.Duration
}

func (r result) nsPerOp() float64 {
	if r.draws == 0 {
		return 0
	}
	return float64(r.elapsed.Nanoseconds()) / float64(r.draws)
}

// benchEngine runs every operation on workers goroutines. Sources are not
// safe for concurrent use, so each goroutine gets its own fork of root.
func benchEngine(ctx context.Context, root *xrand.Source, workers, draws int) ([]result, error) {
	results := make([]result, 0, len(operations))

	for _, op := range operations {
		sources := make([]*xrand.Source, workers)
		for i := range sources {
			sources[i] = root.Fork()
		}

		start := time.Now()
		g, ctx := errgroup.WithContext(ctx)
		for i := range sources {
			src := sources[i]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				return op.run(src, draws)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("running %v: %v", op.name, err)
		}

		results = append(results, result{
			engine:  root.Engine().Name(),
			op:      op.name,
			draws:   workers * draws,
			elapsed: time.Since(start),
		})
	}

	return results, nil
}

func reportResults(results []result, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	columns := "Engine       | Operation |      Draws |      Elapsed |   ns/op\n"
	separator := "---------------------------------------------------------------\n"
	row := "%-12v | %-9v | %10v | %12v | %7.2f\n"

	if _, err := fmt.Fprint(file, columns, separator); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(file, row, r.engine, r.op, r.draws, r.elapsed, r.nsPerOp()); err != nil {
			return err
		}
	}

	return nil
}
