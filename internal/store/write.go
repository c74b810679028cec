package store

import (
	"context"
	"fmt"
	"time"
)

// WriteRun inserts a run record.
// Uses ON CONFLICT(id) DO NOTHING, so writing the same run twice is a no-op.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, mode, started_at, elapsed_ns, finished)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.Mode,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		int64(run.Elapsed),
		boolToInt(run.Finished),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// FinishRun stamps the total elapsed time on a run and marks it finished.
func (s *Store) FinishRun(ctx context.Context, id string, elapsed time.Duration) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET elapsed_ns = ?, finished = 1 WHERE id = ?
	`, int64(elapsed), id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: run %s not found", id)
	}
	return nil
}

// WriteResult inserts a solver result.
// The run referenced by RunID must exist (foreign key constraint).
// A second write for the same (run, seq) is silently ignored.
func (s *Store) WriteResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (run_id, seq, solution, answer, present, verdict, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO NOTHING
	`,
		r.RunID,
		r.Seq,
		r.Solution,
		r.Answer,
		boolToInt(r.Present),
		r.Verdict,
		int64(r.Elapsed),
	)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
