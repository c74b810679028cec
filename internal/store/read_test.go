package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRuns(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	// run-b is inserted first so ordering cannot come from the ID.
	require.NoError(t, s.WriteRun(ctx, createTestRun("run-b", "example")))
	require.NoError(t, s.WriteResult(ctx, createTestResult("run-b", 1, "day1part2", "10")))
	require.NoError(t, s.WriteResult(ctx, createTestResult("run-b", 0, "day1part1", "3")))

	require.NoError(t, s.WriteRun(ctx, createTestRun("run-a", "real")))
	require.NoError(t, s.WriteResult(ctx, createTestResult("run-a", 0, "day1part1", "423")))
	missing := createTestResult("run-a", 1, "day2part2", "")
	missing.Present = false
	missing.Verdict = "unverified"
	require.NoError(t, s.WriteResult(ctx, missing))
}

func TestReadResults_Ordering(t *testing.T) {
	s := createTestStore(t)
	seedRuns(t, s)

	results, err := s.ReadResults(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, results, 4)

	var got []string
	for _, r := range results {
		got = append(got, r.RunID+"/"+r.Solution)
	}
	assert.Equal(t, []string{
		"run-b/day1part1",
		"run-b/day1part2",
		"run-a/day1part1",
		"run-a/day2part2",
	}, got)

	assert.Equal(t, "example", results[0].Mode)
	assert.Equal(t, "real", results[2].Mode)
	assert.Equal(t, time.Millisecond, results[0].Elapsed)
	assert.False(t, results[3].Present)
	assert.Equal(t, "unverified", results[3].Verdict)
}

func TestReadResults_Filters(t *testing.T) {
	s := createTestStore(t)
	seedRuns(t, s)
	ctx := context.Background()

	bySolution, err := s.ReadResults(ctx, Filter{Solution: "day1part1"})
	require.NoError(t, err)
	require.Len(t, bySolution, 2)
	assert.Equal(t, "3", bySolution[0].Answer)
	assert.Equal(t, "423", bySolution[1].Answer)

	byRun, err := s.ReadResults(ctx, Filter{RunID: "run-a"})
	require.NoError(t, err)
	assert.Len(t, byRun, 2)

	limited, err := s.ReadResults(ctx, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-b", limited[0].RunID)
}

func TestReadResults_EmptyNotNil(t *testing.T) {
	s := createTestStore(t)

	results, err := s.ReadResults(context.Background(), Filter{Solution: "day9part9"})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestLatestRun(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, ok, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	seedRuns(t, s)
	run, ok, err := s.LatestRun(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "run-a", run.ID)
}

func TestReadRun_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.ReadRun(context.Background(), "nope")
	assert.Error(t, err)
}
