package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/poker-hands/domain/poker"
)

// Options configures an Evaluator.
type Options struct {
	// Workers bounds the number of goroutines comparing deals.
	// Values below 2 evaluate sequentially.
	Workers int
	// StrictSuits rejects unknown suit codes instead of mapping them to Diamonds.
	StrictSuits bool
	// CrossCheck compares every deal against the reference evaluator too.
	CrossCheck bool
	Logger     *slog.Logger
}

// Result summarizes a batch.
type Result struct {
	Deals  int
	Wins   int
	Ties   int
	Losses int
	// DefaultedSuits counts card codes whose unknown suit became Diamonds.
	DefaultedSuits int
	// Disagreements counts deals where the reference evaluator picked a
	// different outcome. Only populated with CrossCheck.
	Disagreements int
	// Unchecked counts deals skipped by the cross-check because a hand
	// holds the same card twice.
	Unchecked int
}

// Count is the number of deals player one did not lose.
func (r Result) Count() int {
	return r.Wins + r.Ties
}

func (r *Result) merge(o Result) {
	r.Deals += o.Deals
	r.Wins += o.Wins
	r.Ties += o.Ties
	r.Losses += o.Losses
	r.DefaultedSuits += o.DefaultedSuits
	r.Disagreements += o.Disagreements
	r.Unchecked += o.Unchecked
}

// Evaluator counts showdown outcomes over a list of deals.
type Evaluator struct {
	opts Options
}

func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Evaluator{opts: opts}
}

// Count reads deals from r and returns how many player one wins or ties,
// using sequential evaluation and compatibility suit parsing.
func Count(r io.Reader) (int, error) {
	res, err := New(Options{}).Evaluate(context.Background(), r)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// Evaluate reads the whole input in one pass and evaluates it.
func (e *Evaluator) Evaluate(ctx context.Context, r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read hands: %w", err)
	}
	return e.EvaluateLines(ctx, strings.Split(string(data), "\n"))
}

// EvaluateLines parses every line first, so a malformed line aborts the
// batch before any comparison runs and the reported error is always the
// first bad line. Blank lines are skipped.
func (e *Evaluator) EvaluateLines(ctx context.Context, lines []string) (Result, error) {
	deals, err := parseAll(lines, e.opts.StrictSuits)
	if err != nil {
		return Result{}, err
	}

	workers := e.opts.Workers
	if workers < 2 || len(deals) < 2 {
		res, err := e.evaluateChunk(ctx, deals)
		if err != nil {
			return Result{}, err
		}
		e.logResult(res)
		return res, nil
	}

	var (
		mu    sync.Mutex
		total Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	chunk := (len(deals) + workers - 1) / workers
	for start := 0; start < len(deals); start += chunk {
		part := deals[start:min(start+chunk, len(deals))]
		g.Go(func() error {
			res, err := e.evaluateChunk(gctx, part)
			if err != nil {
				return err
			}
			mu.Lock()
			total.merge(res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	e.logResult(total)
	return total, nil
}

func (e *Evaluator) evaluateChunk(ctx context.Context, deals []Deal) (Result, error) {
	var res Result
	for _, d := range deals {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		res.Deals++
		res.DefaultedSuits += d.DefaultedSuits
		if d.DefaultedSuits > 0 {
			e.opts.Logger.Warn("unrecognized suit code treated as diamonds", "line", d.Line, "cards", d.DefaultedSuits)
		}

		outcome := poker.Compare(d.Player1, d.Player2)
		switch {
		case outcome > 0:
			res.Wins++
		case outcome == 0:
			res.Ties++
		default:
			res.Losses++
		}

		if !e.opts.CrossCheck {
			continue
		}
		if d.Player1.HasDuplicates() || d.Player2.HasDuplicates() {
			res.Unchecked++
			continue
		}
		want, err := poker.ReferenceCompare(d.Player1, d.Player2)
		if err != nil {
			return Result{}, &LineError{Line: d.Line, Err: err}
		}
		if want != outcome {
			res.Disagreements++
			e.opts.Logger.Debug("reference evaluator disagrees",
				"line", d.Line,
				"player1", d.Player1.String(),
				"player2", d.Player2.String(),
				"outcome", outcome,
				"reference", want,
			)
		}
	}
	return res, nil
}

func (e *Evaluator) logResult(res Result) {
	e.opts.Logger.Debug("batch evaluated",
		"deals", res.Deals,
		"wins", res.Wins,
		"ties", res.Ties,
		"losses", res.Losses,
		"defaulted_suits", res.DefaultedSuits,
		"disagreements", res.Disagreements,
	)
}
