package store

import (
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a new temp-dir store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var testStart = time.Date(2018, 12, 1, 5, 0, 0, 0, time.UTC)

// createTestRun creates a run with minimal required fields.
func createTestRun(id, mode string) Run {
	return Run{
		ID:        id,
		Mode:      mode,
		StartedAt: testStart,
	}
}

// createTestResult creates a present, verified result.
func createTestResult(runID string, seq int, solution, answer string) Result {
	return Result{
		RunID:    runID,
		Seq:      seq,
		Solution: solution,
		Answer:   answer,
		Present:  true,
		Verdict:  "verified",
		Elapsed:  time.Millisecond,
	}
}
