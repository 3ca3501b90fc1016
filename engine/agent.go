package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"kikande/experiments/metrics"
	"kikande/game"
	"kikande/searcher"
	"kikande/utils"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var ErrNoMoves = errors.New("no legal moves")

// SearchAgent plays the best line of a search.
type SearchAgent struct {
	searcher *searcher.Searcher
}

func NewSearchAgent(s *searcher.Searcher) *SearchAgent {
	return &SearchAgent{searcher: s}
}

// FindMove falls back to the first legal move when the search finds no line.
func (a *SearchAgent) FindMove(ctx context.Context, g game.Game) (game.Move, metrics.SearchMetric, error) {
	result, metric, err := a.searcher.Search(ctx, g)
	if err == nil {
		return result.Best().Moves[0], metric, nil
	}

	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metric, errors.Wrap(err, "no fallback move")
	}
	log.Warn().Err(err).Msgf("search failed, playing %s", moves[0])
	return moves[0], metric, nil
}

// RandomAgent plays a uniformly random legal move.
type RandomAgent struct {
	r *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{r: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(_ context.Context, g game.Game) (game.Move, metrics.SearchMetric, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMoves
	}
	return moves[a.r.Intn(len(moves))], metrics.SearchMetric{}, nil
}

// HumanAgent reads moves in notation, one per line, and silently asks again
// until it gets a legal one.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *HumanAgent) FindMove(ctx context.Context, g game.Game) (game.Move, metrics.SearchMetric, error) {
	fmt.Fprintf(a.out, "%s\n", g)
	legal := g.LegalMoves()
	for {
		if err := ctx.Err(); err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		fmt.Fprint(a.out, "move> ")
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, err
			}
			return game.Move{}, metrics.SearchMetric{}, io.EOF
		}

		m, err := game.NewMoveFactory(&g).Parse(strings.TrimSpace(a.in.Text()))
		if err == nil && utils.FindIndex(legal, m) < 0 {
			err = errors.Wrapf(game.ErrIllegalMove, "%s", m)
		}
		if err != nil {
			log.Debug().Err(err).Msg("ignoring input")
			continue
		}
		return m, metrics.SearchMetric{}, nil
	}
}
