// Package searcher picks moves with a parallel iterative deepening negamax
// search. Every worker searches the whole tree and they share results
// through one transposition table.
package searcher

import (
	"context"
	"kikande/experiments/metrics"
	"kikande/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrDelivery = errors.New("failed to deliver line")
	ErrNoResult = errors.New("search found no line")
)

type Option func(s *Searcher)

// WithMetrics collects search metrics, returned by Search.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// WithReporter calls report with all lines received so far, best first,
// every time a worker completes a depth.
func WithReporter(report func(lines []game.PVLine)) Option {
	return func(s *Searcher) {
		if report != nil {
			s.report = report
		}
	}
}

// WithTable makes searches share tt instead of starting from an empty table.
func WithTable(tt *TranspositionTable) Option {
	return func(s *Searcher) {
		if tt != nil {
			s.tt = tt
		}
	}
}

type Searcher struct {
	config  Config
	metrics metrics.Collector
	report  func(lines []game.PVLine)
	tt      *TranspositionTable
}

type Result struct {
	Lines []game.PVLine // Best first
}

func (r Result) Best() game.PVLine {
	return r.Lines[0]
}

func NewSearcher(config Config, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		config:  config,
		metrics: metrics.NewDummyCollector(),
		report:  func([]game.PVLine) {},
	}
	for _, option := range options {
		option(s)
	}
	if s.config.MaxDepth < 1 || s.config.Threads < 1 {
		panic("Must search at least one depth with at least one thread")
	}
	return s
}

func (s *Searcher) Config() Config {
	return s.config
}

// Search runs the configured number of workers on g until they reach the
// maximum depth, run out of time or ctx is done. Lines from workers that
// failed are kept; Search only fails if no line was found at all.
func (s *Searcher) Search(ctx context.Context, g game.Game) (Result, metrics.SearchMetric, error) {
	s.metrics.Start(s.config.Threads, s.config.MaxDepth, s.config.MaxTime)
	tt := s.tt
	if tt == nil {
		tt = NewTranspositionTable()
	}
	timer := NewTimer(s.config.budget())
	root := NewNode(g)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan game.PVLine)

	var group errgroup.Group
	for i := 0; i < s.config.Threads; i++ {
		w := &worker{id: i, tt: tt, timer: timer.Fork(ctx)}
		group.Go(func() error {
			err := w.iterativeDeepening(ctx, root, s.config.MaxDepth, lines)
			s.metrics.AddNodes(w.nodes)
			s.metrics.AddHits(w.hits)
			if err != nil {
				log.Warn().Err(err).Int("worker", w.id).Msg("worker stopped")
			}
			return err
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- group.Wait()
		close(lines)
	}()

	var result Result
	for line := range lines {
		s.metrics.AddLine(line.Depth())
		result.Lines = append(result.Lines, line)
		slices.SortStableFunc(result.Lines, game.PVLine.Compare)
		s.report(result.Lines)
	}
	err := <-errc
	metric := s.metrics.Complete()

	if len(result.Lines) == 0 {
		if err == nil {
			err = ErrNoResult
		}
		return result, metric, errors.Wrapf(err, "search to depth %d", s.config.MaxDepth)
	}
	log.Info().
		Int("threads", s.config.Threads).
		Int("depth", result.Best().Depth()).
		Dur("elapsed", timer.Elapsed()).
		Msgf("best line %s", result.Best())
	return result, metric, nil
}
