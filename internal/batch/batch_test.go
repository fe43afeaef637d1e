package batch

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

const (
	samplePuzzle   = "48.3............71.2.......7.5....6....2..8.............1.76...3.....4......5...."
	sampleSolution = "487312695593684271126597384735849162914265837268731549851476923379128456642953718"
	sixWayPuzzle   = "....5.2......479..1.5.6.8..246......3.7...4.6......753..9.8.5....821......4.7...."
)

func quietRunner() *Runner {
	return NewRunner(solver.NewPropagationSolver(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRun(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"# canonical sample",
		"",
		samplePuzzle,
		samplePuzzle,
	}, "\n"))
	var report strings.Builder

	sum, err := quietRunner().Run(context.Background(), in, &report)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Puzzles)
	assert.Positive(t, sum.Nodes)

	lines := strings.Split(strings.TrimRight(report.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines[:2] {
		fields := strings.Fields(l)
		require.Len(t, fields, 2)
		assert.Equal(t, sampleSolution, fields[1])
	}
	assert.True(t, strings.HasPrefix(lines[2], "total: "))
}

func TestRunRejectsAmbiguousPuzzle(t *testing.T) {
	in := strings.NewReader(sixWayPuzzle + "\n")
	var report strings.Builder

	sum, err := quietRunner().Run(context.Background(), in, &report)
	require.ErrorIs(t, err, ErrSolutionCount)
	assert.Equal(t, 1, sum.Puzzles)
	assert.Empty(t, report.String(), "no record for the failing puzzle")
}

func TestRunRejectsMalformedLine(t *testing.T) {
	in := strings.NewReader("# header\n48.3\n")
	var report strings.Builder

	_, err := quietRunner().Run(context.Background(), in, &report)
	require.ErrorIs(t, err, domain.ErrBadLength)
	assert.Contains(t, err.Error(), "line 2")
}
