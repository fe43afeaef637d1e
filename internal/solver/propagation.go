package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
	"svw.info/sudoku-solver/internal/ports"
)

// ErrNoSolution reports a board with no valid completion.
var ErrNoSolution = errors.New("no solution")

// PropagationSolver adapts the constraint-propagation engine to the
// Solver port. Contradictions inside the search are pruning, never
// errors; the only error outcomes here are an exhausted search tree
// (ErrNoSolution from Solve) and context cancellation.
type PropagationSolver struct{}

func NewPropagationSolver() *PropagationSolver { return &PropagationSolver{} }

func (s *PropagationSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var out *domain.Board
	for sol := range engine.FromGrid(b.Values).SolutionsCounted(&nodes) {
		out = &domain.Board{Values: sol.Grid9(), Fixed: b.Fixed}
		break
	}
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if out == nil {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return out, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one
// exists. The search stops the moment a second solution appears.
func (s *PropagationSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	nodes, count := 0, 0
	for range engine.FromGrid(b.Values).SolutionsCounted(&nodes) {
		count++
		if count >= 2 || ctx.Err() != nil {
			break
		}
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

func (s *PropagationSolver) Enumerate(ctx context.Context, b *domain.Board, limit int, fn func(*domain.Board) bool) (ports.Stats, error) {
	start := time.Now()
	nodes, count := 0, 0
	for sol := range engine.FromGrid(b.Values).SolutionsCounted(&nodes) {
		if ctx.Err() != nil {
			break
		}
		count++
		if !fn(&domain.Board{Values: sol.Grid9(), Fixed: b.Fixed}) {
			break
		}
		if limit > 0 && count >= limit {
			break
		}
	}
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
