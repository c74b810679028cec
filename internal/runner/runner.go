// Package runner drives registered solutions one after another, timing each
// solver and the whole run.
//
// Execution is strictly sequential. The first fatal error (unreadable
// fixture, solver error, answer mismatch) stops the run; the results
// gathered so far are still returned in the Summary.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/solution"
	"github.com/roach88/advent/internal/store"
)

// Recorder persists run history. *store.Store implements it.
type Recorder interface {
	WriteRun(ctx context.Context, run store.Run) error
	WriteResult(ctx context.Context, r store.Result) error
	FinishRun(ctx context.Context, id string, elapsed time.Duration) error
}

// Runner executes a list of solutions against fixtures in one mode.
type Runner struct {
	Solutions []solution.Solution
	Inputs    string
	Mode      input.Mode
	Options   solution.Options

	// Clock defaults to SystemClock.
	Clock Clock
	// IDs defaults to UUIDv7Generator.
	IDs IDGenerator
	// Recorder is optional; nil disables history.
	Recorder Recorder
	// Out receives one line per solver plus a final total. Nil discards.
	Out io.Writer
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Report is the outcome of one solver.
type Report struct {
	Solution string           `json:"solution"`
	Name     string           `json:"name"`
	Answer   solution.Answer  `json:"answer"`
	Verdict  solution.Verdict `json:"verdict"`
	Elapsed  time.Duration    `json:"elapsed_ns"`
}

// Summary is the outcome of a run.
type Summary struct {
	RunID   string        `json:"run_id"`
	Mode    string        `json:"mode"`
	Reports []Report      `json:"reports"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// SolutionError attributes a fatal error to the solution that raised it.
type SolutionError struct {
	Solution string
	Err      error
}

func (e *SolutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Solution, e.Err)
}

func (e *SolutionError) Unwrap() error {
	return e.Err
}

// Run executes every solution in order.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	clock := r.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	ids := r.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	start := clock.Now()
	summary := &Summary{
		RunID:   ids.Generate(),
		Mode:    r.Mode.String(),
		Reports: make([]Report, 0, len(r.Solutions)),
	}
	logger.Debug("run starting", "run_id", summary.RunID, "mode", summary.Mode, "solutions", len(r.Solutions))

	if r.Recorder != nil {
		if err := r.Recorder.WriteRun(ctx, store.Run{ID: summary.RunID, Mode: summary.Mode, StartedAt: start}); err != nil {
			return summary, fmt.Errorf("record run: %w", err)
		}
	}

	for seq, s := range r.Solutions {
		report, err := r.runOne(ctx, clock, logger, s)
		if err != nil {
			return summary, &SolutionError{Solution: s.Name(), Err: err}
		}
		summary.Reports = append(summary.Reports, report)
		fmt.Fprintf(out, "%s (%v): %s\n", report.Name, report.Elapsed, report.Answer)

		if r.Recorder != nil {
			rec := store.Result{
				RunID:    summary.RunID,
				Seq:      seq,
				Solution: report.Solution,
				Answer:   report.Answer.Value,
				Present:  report.Answer.Present,
				Verdict:  string(report.Verdict),
				Elapsed:  report.Elapsed,
			}
			if err := r.Recorder.WriteResult(ctx, rec); err != nil {
				return summary, fmt.Errorf("record result: %w", err)
			}
		}
	}

	summary.Elapsed = clock.Now().Sub(start)
	fmt.Fprintf(out, "Finished in %v\n", summary.Elapsed)

	if r.Recorder != nil {
		if err := r.Recorder.FinishRun(ctx, summary.RunID, summary.Elapsed); err != nil {
			return summary, fmt.Errorf("record run: %w", err)
		}
	}
	logger.Debug("run finished", "run_id", summary.RunID, "elapsed", summary.Elapsed)
	return summary, nil
}

func (r *Runner) runOne(ctx context.Context, clock Clock, logger *slog.Logger, s solution.Solution) (Report, error) {
	started := clock.Now()
	day, part := s.Input()

	logger.Debug("solving", "solution", s.ID.String(), "fixture", input.Path(r.Inputs, day, part, r.Mode))
	lines, err := input.Load(r.Inputs, day, part, r.Mode)
	if err != nil {
		return Report{}, err
	}

	answer, err := s.Solve(ctx, lines, r.Options)
	if err != nil {
		return Report{}, err
	}

	verdict, err := solution.Verify(r.Mode, s.Expect, answer)
	if err != nil {
		return Report{}, err
	}
	if !answer.Present {
		logger.Info("no match", "solution", s.ID.String())
	}

	return Report{
		Solution: s.ID.String(),
		Name:     s.Name(),
		Answer:   answer,
		Verdict:  verdict,
		Elapsed:  clock.Now().Sub(started),
	}, nil
}
