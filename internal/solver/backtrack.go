package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// BacktrackingSolver is a plain recursive solver with no candidate
// bookkeeping: first empty cell row-major, digits 1-9, legality by
// scanning the row, column and box. It is kept as an independent
// reference implementation for cross-checking the propagation engine.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func legal(g *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func firstEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// enumerate runs the depth-first search, handing each completed grid
// to emit. It unwinds as soon as emit reports it has seen enough.
func enumerate(ctx context.Context, g *[9][9]uint8, nodes *int, emit func([9][9]uint8) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := firstEmpty(g)
	if !ok {
		return emit(*g)
	}
	for v := uint8(1); v <= 9; v++ {
		*nodes++
		if !legal(g, r, c, v) {
			continue
		}
		g[r][c] = v
		if !enumerate(ctx, g, nodes, emit) {
			return false
		}
		g[r][c] = 0
	}
	return true
}

// hasConflict rejects boards whose givens already clash; the dfs above
// only checks cells it fills itself.
func hasConflict(g *[9][9]uint8) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				g[r][c] = 0
				ok := legal(g, r, c, v)
				g[r][c] = v
				if !ok {
					return true
				}
			}
		}
	}
	return false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	var out *domain.Board
	if !hasConflict(&grid) {
		enumerate(ctx, &grid, &nodes, func(sol [9][9]uint8) bool {
			out = &domain.Board{Values: sol, Fixed: b.Fixed}
			return false
		})
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

func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes, count := 0, 0
	if !hasConflict(&grid) {
		enumerate(ctx, &grid, &nodes, func([9][9]uint8) bool {
			count++
			return count < 2
		})
	}
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}

func (s *BacktrackingSolver) Enumerate(ctx context.Context, b *domain.Board, limit int, fn func(*domain.Board) bool) (ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes, count := 0, 0
	if !hasConflict(&grid) {
		enumerate(ctx, &grid, &nodes, func(sol [9][9]uint8) bool {
			count++
			if !fn(&domain.Board{Values: sol, Fixed: b.Fixed}) {
				return false
			}
			return limit <= 0 || count < limit
		})
	}
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
