package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ReadResults returns recorded results ordered by run insertion, then seq.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ReadResults(ctx context.Context, f Filter) ([]Result, error) {
	var (
		where []string
		args  []any
	)
	if f.RunID != "" {
		where = append(where, "r.run_id = ?")
		args = append(args, f.RunID)
	}
	if f.Solution != "" {
		where = append(where, "r.solution = ?")
		args = append(args, f.Solution)
	}

	query := `
		SELECT r.run_id, r.seq, r.solution, r.answer, r.present, r.verdict, r.elapsed_ns, u.mode
		FROM results r
		JOIN runs u ON r.run_id = u.id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY u.rowid ASC, r.seq ASC"
	if f.Limit > 0 {
		query += "\n\t\tLIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		var (
			r         Result
			present   int
			elapsedNS int64
		)
		if err := rows.Scan(&r.RunID, &r.Seq, &r.Solution, &r.Answer, &present, &r.Verdict, &elapsedNS, &r.Mode); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Present = present != 0
		r.Elapsed = time.Duration(elapsedNS)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return results, nil
}

// ReadRun returns the run with the given ID.
// Returns sql.ErrNoRows (wrapped) if it does not exist.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, mode, started_at, elapsed_ns, finished FROM runs WHERE id = ?
	`, id)
	return scanRun(row)
}

// LatestRun returns the most recently inserted run.
// ok is false when the store holds no runs.
func (s *Store) LatestRun(ctx context.Context) (run Run, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, mode, started_at, elapsed_ns, finished FROM runs ORDER BY rowid DESC LIMIT 1
	`)
	run, err = scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return run, true, nil
}

func scanRun(row *sql.Row) (Run, error) {
	var (
		run       Run
		startedAt string
		elapsedNS int64
		finished  int
	)
	if err := row.Scan(&run.ID, &run.Mode, &startedAt, &elapsedNS, &finished); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	run.StartedAt = t
	run.Elapsed = time.Duration(elapsedNS)
	run.Finished = finished != 0
	return run, nil
}
