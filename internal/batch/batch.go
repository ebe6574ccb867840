// internal/batch/batch.go
// Drives encoding over a whole state table. States are independent, so the
// work fans out across workers; output order is input order regardless of
// completion order. The default mode collects per-state failures and still
// emits every good block — a review workflow wants the full error list, not
// the first line of it.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"dwdeck-core/deck"
	"dwdeck-core/orbital"
	"dwdeck-core/state"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options controls an encode run.
type Options struct {
	Threads int  // worker count; 0 = all CPUs
	Strict  bool // halt on the first bad state instead of collecting
}

// StateError ties an encoding failure to its input row.
type StateError struct {
	Index int // 0-based row in the state table
	ExKeV float64
	Err   error
}

func (e StateError) Error() string {
	return fmt.Sprintf("state %d (%.0f keV): %v", e.Index, e.ExKeV, e.Err)
}

func (e StateError) Unwrap() error { return e.Err }

// Result is the outcome of one encode run.
type Result struct {
	RunID   string
	Deck    deck.Deck
	Skipped []StateError // states that failed to encode, in input order
}

// EncodeStates encodes recs into one deck. In strict mode the first failure
// aborts the run; otherwise failures are skipped and reported in the result.
func EncodeStates(ctx context.Context, log *zap.Logger, cfg deck.Config, recs []state.Record, opt Options) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(recs) == 0 {
		return Result{}, fmt.Errorf("batch: no states to encode")
	}
	threads := opt.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	runID := uuid.NewString()
	log.Info("encoding state table",
		zap.String("run_id", runID),
		zap.Int("states", len(recs)),
		zap.Int("threads", threads),
		zap.Bool("strict", opt.Strict))

	blocks := make([][]string, len(recs))
	errs := make([]error, len(recs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, rec := range recs {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := deck.EncodeOne(rec, cfg)
			if err != nil {
				if opt.Strict {
					return StateError{Index: i, ExKeV: rec.ExKeV, Err: err}
				}
				errs[i] = err
				return nil
			}
			blocks[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("batch: %w", err)
	}

	res := Result{RunID: runID}
	for i, rec := range recs {
		if errs[i] != nil {
			se := StateError{Index: i, ExKeV: rec.ExKeV, Err: errs[i]}
			res.Skipped = append(res.Skipped, se)
			log.Warn("state skipped", zap.String("run_id", runID), zap.Error(se))
			continue
		}
		res.Deck.Lines = append(res.Deck.Lines, blocks[i]...)
	}
	if len(res.Skipped) == len(recs) {
		return res, fmt.Errorf("batch: all %d states failed to encode", len(recs))
	}
	res.Deck.Lines = append(res.Deck.Lines, deck.Terminator)

	log.Info("deck assembled",
		zap.String("run_id", runID),
		zap.Int("encoded", len(recs)-len(res.Skipped)),
		zap.Int("skipped", len(res.Skipped)))
	return res, nil
}

// ScanStates builds an excitation-energy sweep sharing one orbital: a row
// every stepKeV from fromKeV through toKeV inclusive. Quantum numbers come
// from the label itself.
func ScanStates(fromKeV, toKeV, stepKeV float64, label string) ([]state.Record, error) {
	if stepKeV <= 0 {
		return nil, fmt.Errorf("batch: scan step must be positive, got %g", stepKeV)
	}
	if toKeV < fromKeV {
		return nil, fmt.Errorf("batch: scan range is empty (%g..%g keV)", fromKeV, toKeV)
	}
	orb, err := orbital.Parse(label)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	var recs []state.Record
	for ex := fromKeV; ex <= toKeV+1e-9; ex += stepKeV {
		recs = append(recs, state.Record{
			ExKeV:   ex,
			Orbital: orb.Label,
			N:       orb.Nodes + 1,
			L:       orb.L,
			J2:      orb.J2,
			Nodes:   orb.Nodes,
		})
	}
	return recs, nil
}
