package main

import (
	"context"
	"flag"
	"fmt"
	"kikande/engine"
	"kikande/experiments"
	"kikande/game"
	"kikande/meta"
	"kikande/searcher"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: kikande [-v] <command> [flags] [moves]

commands:
  search      search the position reached by the moves
  play        play against the engine on the terminal
  experiment  run engine against engine experiments
`

func main() {
	verbose := flag.Bool("v", false, "Log search progress")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "search":
		err = runSearch(ctx, args[1:])
	case "play":
		err = runPlay(ctx, args[1:])
	case "experiment":
		err = runExperiment(ctx, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Msg(args[0])
		os.Exit(1)
	}
}

// searchFlags registers the search settings shared by commands. A difficulty
// overrides depth and time.
func searchFlags(fs *flag.FlagSet, defaultDifficulty int) func() searcher.Config {
	difficulty := fs.Int("difficulty", defaultDifficulty, "Engine strength from 1 to 10, overrides -depth and -time")
	depth := fs.Int("depth", searcher.DefaultConfig().MaxDepth, "Maximum search depth in half-moves")
	threads := fs.Int("threads", searcher.DefaultConfig().Threads, "Number of search workers")
	maxTime := fs.Duration("time", 0, "Time per move, unbounded if zero")
	return func() searcher.Config {
		cfg := searcher.Config{MaxDepth: *depth, Threads: *threads, MaxTime: *maxTime}
		if *difficulty > 0 {
			cfg = searcher.ConfigFromDifficulty(*difficulty)
			cfg.Threads = *threads
		}
		return cfg
	}
}

func runSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	config := searchFlags(fs, 0)
	fs.Parse(args)

	g, err := game.NewGameFromNotation(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Println(g)

	s := searcher.NewSearcher(config(), searcher.WithMetrics(), searcher.WithReporter(func(lines []game.PVLine) {
		fmt.Printf("depth %2d  %s\n", lines[0].Depth(), lines[0])
	}))
	result, metric, err := s.Search(ctx, g)
	if err != nil {
		return err
	}
	fmt.Printf("best: %s\n", result.Best())
	fmt.Printf("nodes: %d, hits: %d, time: %v\n", metric.Nodes, metric.Hits, metric.Duration.Round(time.Millisecond))
	return nil
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	config := searchFlags(fs, meta.DEFAULT_DIFFICULTY)
	second := fs.Bool("second", false, "Let the engine move first")
	fs.Parse(args)

	g, err := game.NewGameFromNotation(strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	human := engine.Agent(engine.NewHumanAgent(os.Stdin, os.Stdout))
	computer := engine.Agent(engine.NewSearchAgent(searcher.NewSearcher(config())))
	agents := []engine.Agent{human, computer}
	if *second {
		agents[0], agents[1] = computer, human
	}

	e := engine.NewLocalEngine(g, agents...)
	winner, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(e.Game())
	switch {
	case winner < 0:
		fmt.Printf("no winner after %d moves\n", gameMetric.TotalMoves)
	case agents[winner] == human:
		fmt.Printf("you win after %d moves\n", gameMetric.TotalMoves)
	default:
		fmt.Printf("engine wins after %d moves\n", gameMetric.TotalMoves)
	}
	return nil
}

func runExperiment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	name := fs.String("name", "threads", "Experiment to run: threads, depth or throughput")
	out := fs.String("out", "experiments", "Directory to store results in")
	fs.Parse(args)

	run, err := experiments.Lookup(*name)
	if err != nil {
		return err
	}
	records, err := run(ctx, *out)
	if err != nil {
		return err
	}
	fmt.Printf("%d games stored in %s\n", len(records.Games), records.Dir)
	return nil
}
