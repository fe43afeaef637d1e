package solver

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/validator"
)

const (
	samplePuzzle   = "48.3............71.2.......7.5....6....2..8.............1.76...3.....4......5...."
	sampleSolution = "487312695593684271126597384735849162914265837268731549851476923379128456642953718"
	sixWayPuzzle   = "....5.2......479..1.5.6.8..246......3.7...4.6......753..9.8.5....821......4.7...."
)

func mustBoard(t *testing.T, line string) *domain.Board {
	t.Helper()
	b, err := domain.ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	return b
}

func TestSolveSampleUnder1s(t *testing.T) {
	solvers := map[string]ports.Solver{
		"propagation": NewPropagationSolver(),
		"backtrack":   NewBacktrackingSolver(),
	}
	for name, s := range solvers {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			out, st, err := s.Solve(ctx, mustBoard(t, samplePuzzle))
			if err != nil {
				t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
			}
			if got := out.Line(); got != sampleSolution {
				t.Fatalf("wrong solution:\n got %s\nwant %s", got, sampleSolution)
			}
			ok, conf, err := validator.New().Validate(ctx, out)
			if err != nil || !ok {
				t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
			}
			if st.Duration > time.Second {
				t.Fatalf("took too long: %v (>1s)", st.Duration)
			}
			t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
		})
	}
}

// TestEnumerateAgreement cross-checks the propagation engine against
// the plain backtracking solver on a puzzle with several completions:
// both must produce the same solution set.
func TestEnumerateAgreement(t *testing.T) {
	ctx := context.Background()
	gather := func(s ports.Solver) []string {
		var out []string
		if _, err := s.Enumerate(ctx, mustBoard(t, sixWayPuzzle), 0, func(sol *domain.Board) bool {
			out = append(out, sol.Line())
			return true
		}); err != nil {
			t.Fatalf("Enumerate: %v", err)
		}
		sort.Strings(out)
		return out
	}

	prop := gather(NewPropagationSolver())
	back := gather(NewBacktrackingSolver())
	if len(prop) != 6 {
		t.Fatalf("propagation found %d solutions, want 6", len(prop))
	}
	if len(back) != len(prop) {
		t.Fatalf("solvers disagree on count: propagation=%d backtrack=%d", len(prop), len(back))
	}
	for i := range prop {
		if prop[i] != back[i] {
			t.Fatalf("solution sets differ at %d:\n%s\n%s", i, prop[i], back[i])
		}
	}
}

func TestEnumerateLimitStopsEarly(t *testing.T) {
	empty := strings.Repeat(".", 81)
	count := 0
	_, err := NewPropagationSolver().Enumerate(context.Background(), mustBoard(t, empty), 3, func(*domain.Board) bool {
		count++
		return true
	})
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if count != 3 {
		t.Fatalf("limit ignored: got %d solutions", count)
	}
}

func TestUnique(t *testing.T) {
	ctx := context.Background()
	for name, s := range map[string]ports.Solver{
		"propagation": NewPropagationSolver(),
		"backtrack":   NewBacktrackingSolver(),
	} {
		t.Run(name, func(t *testing.T) {
			if ok, _, err := s.Unique(ctx, mustBoard(t, samplePuzzle)); err != nil || !ok {
				t.Fatalf("well-posed puzzle reported non-unique (err=%v)", err)
			}
			if ok, _, err := s.Unique(ctx, mustBoard(t, sixWayPuzzle)); err != nil || ok {
				t.Fatalf("six-way puzzle reported unique (err=%v)", err)
			}
		})
	}
}

func TestSolveNoSolution(t *testing.T) {
	// Duplicate givens in the first row.
	line := "44" + strings.Repeat(".", 79)
	for name, s := range map[string]ports.Solver{
		"propagation": NewPropagationSolver(),
		"backtrack":   NewBacktrackingSolver(),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.Solve(context.Background(), mustBoard(t, line))
			if !errors.Is(err, ErrNoSolution) {
				t.Fatalf("got err=%v, want ErrNoSolution", err)
			}
		})
	}
}
