// Package store provides SQLite-backed run history for the advent runner.
//
// Each invocation of the runner writes one row to runs and one row per
// solver to results:
//   - Runs: run ID, fixture mode, start time, total elapsed time
//   - Results: answer, verdict and elapsed time for each solver, in order
//
// # Ordering
//
// Runs are ordered by insertion (rowid) and results by seq within a run.
// Timestamps are stored for display only.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Results must reference an existing run
package store
