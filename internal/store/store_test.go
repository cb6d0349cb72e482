package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/continha/internal/arith"
	"github.com/abhisek/continha/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "continha.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func row(op arith.Operation, correct bool) session.Row {
	return session.Row{
		Timestamp:     time.Now(),
		SessionID:     "s1",
		Bracket:       arith.Bracket9to12,
		Operation:     op,
		QuestionText:  "Quanto é 6 x 2?",
		OperandA:      6,
		OperandB:      2,
		Answer:        "12",
		CorrectAnswer: 12,
		Correct:       correct,
		Attempts: []session.Attempt{
			{Example: "primeiro exemplo", Understood: correct, Judged: true},
		},
		DifficultyFactor: 1.1,
		RecentAccuracy:   0.8,
		OperationCount:   3,
	}
}

func TestOpen_CreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "continha.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Append(ctx, row(arith.OpSum, true)))
	require.NoError(t, s.Close())

	// Reopening must keep existing rows.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	n, err := s2.TotalRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAppendAndTotalRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Append(ctx, row(arith.OpSum, true)))
	}

	n, err := s.TotalRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStatsByOperation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	appends := []struct {
		op      arith.Operation
		correct bool
	}{
		{arith.OpSum, true},
		{arith.OpSum, true},
		{arith.OpSum, false},
		{arith.OpDivide, true},
	}
	for _, a := range appends {
		require.NoError(t, s.Append(ctx, row(a.op, a.correct)))
	}

	stats, err := s.StatsByOperation(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by operation name: divisao before soma.
	assert.Equal(t, OperationStats{Operation: "divisao", Total: 1, Correct: 1, Accuracy: 1}, stats[0])
	assert.Equal(t, "soma", stats[1].Operation)
	assert.Equal(t, 3, stats[1].Total)
	assert.Equal(t, 2, stats[1].Correct)
	assert.InDelta(t, 2.0/3.0, stats[1].Accuracy, 1e-12)
}

func TestStatsByOperation_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.StatsByOperation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
