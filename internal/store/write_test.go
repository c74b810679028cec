package store

import (
	"context"
	"testing"
	"time"
)

func TestWriteRun_Basic(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.WriteRun(ctx, createTestRun("run-1", "example")); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}

	run, err := s.ReadRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("ReadRun() failed: %v", err)
	}
	if run.Mode != "example" {
		t.Errorf("mode = %q, want %q", run.Mode, "example")
	}
	if !run.StartedAt.Equal(testStart) {
		t.Errorf("started_at = %v, want %v", run.StartedAt, testStart)
	}
	if run.Finished {
		t.Error("new run should not be finished")
	}
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	run := createTestRun("run-1", "example")
	for i := 0; i < 2; i++ {
		if err := s.WriteRun(ctx, run); err != nil {
			t.Fatalf("WriteRun() #%d failed: %v", i, err)
		}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("runs = %d, want 1", count)
	}
}

func TestFinishRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.WriteRun(ctx, createTestRun("run-1", "real")); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}
	if err := s.FinishRun(ctx, "run-1", 42*time.Millisecond); err != nil {
		t.Fatalf("FinishRun() failed: %v", err)
	}

	run, err := s.ReadRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("ReadRun() failed: %v", err)
	}
	if !run.Finished {
		t.Error("run should be finished")
	}
	if run.Elapsed != 42*time.Millisecond {
		t.Errorf("elapsed = %v, want 42ms", run.Elapsed)
	}
}

func TestFinishRun_Unknown(t *testing.T) {
	s := createTestStore(t)
	if err := s.FinishRun(context.Background(), "missing", time.Second); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestWriteResult_RequiresRun(t *testing.T) {
	s := createTestStore(t)

	err := s.WriteResult(context.Background(), createTestResult("missing", 0, "day1part1", "3"))
	if err == nil {
		t.Error("expected foreign key error for result without run")
	}
}

func TestWriteResult_DuplicateSeqIgnored(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if err := s.WriteRun(ctx, createTestRun("run-1", "example")); err != nil {
		t.Fatalf("WriteRun() failed: %v", err)
	}
	if err := s.WriteResult(ctx, createTestResult("run-1", 0, "day1part1", "3")); err != nil {
		t.Fatalf("WriteResult() failed: %v", err)
	}
	if err := s.WriteResult(ctx, createTestResult("run-1", 0, "day1part1", "999")); err != nil {
		t.Fatalf("duplicate WriteResult() failed: %v", err)
	}

	results, err := s.ReadResults(ctx, Filter{RunID: "run-1"})
	if err != nil {
		t.Fatalf("ReadResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Answer != "3" {
		t.Errorf("answer = %q, want first write to win", results[0].Answer)
	}
}
