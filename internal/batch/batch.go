// Package batch runs a solver over a newline-delimited puzzle file and
// writes a per-puzzle timing report. Every puzzle in a batch is
// expected to have exactly one solution; a miss aborts the whole run.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// ErrSolutionCount reports a puzzle that did not have exactly one
// solution. Either the puzzle source is malformed or the solver is
// defective; both warrant stopping the batch.
var ErrSolutionCount = errors.New("puzzle does not have exactly one solution")

// Summary aggregates a completed batch run.
type Summary struct {
	Puzzles int
	Nodes   int
	Total   time.Duration
}

// Runner processes puzzle files with the configured solver.
type Runner struct {
	Solver ports.Solver
	Log    *slog.Logger
}

func NewRunner(s ports.Solver, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{Solver: s, Log: log}
}

// Run reads one puzzle per line from in, skipping blank lines and
// lines starting with '#', solves each, and writes
// "<seconds> <solution-line>" per puzzle plus a trailing total to
// report. It stops at the first malformed line, the first puzzle
// without exactly one solution, or context cancellation.
func (r *Runner) Run(ctx context.Context, in io.Reader, report io.Writer) (Summary, error) {
	var sum Summary
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		b, err := domain.ParseLine(line)
		if err != nil {
			return sum, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sum.Puzzles++
		r.Log.Info("solving puzzle", "n", sum.Puzzles, "line", lineNo)

		var sols []*domain.Board
		st, err := r.Solver.Enumerate(ctx, b, 2, func(sol *domain.Board) bool {
			sols = append(sols, sol)
			return true
		})
		sum.Nodes += st.Nodes
		sum.Total += st.Duration
		if err != nil {
			return sum, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(sols) != 1 {
			return sum, fmt.Errorf("line %d: %w: found %s", lineNo, ErrSolutionCount, countLabel(len(sols)))
		}
		if _, err := fmt.Fprintf(report, "%.6f %s\n", st.Duration.Seconds(), sols[0].Line()); err != nil {
			return sum, fmt.Errorf("line %d: writing report: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return sum, fmt.Errorf("reading puzzles: %w", err)
	}
	if _, err := fmt.Fprintf(report, "total: %.6f\n", sum.Total.Seconds()); err != nil {
		return sum, fmt.Errorf("writing report: %w", err)
	}
	r.Log.Info("batch done", "puzzles", sum.Puzzles, "nodes", sum.Nodes, "total", sum.Total.Round(time.Millisecond))
	return sum, nil
}

func countLabel(n int) string {
	if n == 0 {
		return "none"
	}
	return "2 or more"
}
