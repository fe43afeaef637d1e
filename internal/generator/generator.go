// Package generator creates puzzles with a unique solution by carving
// givens out of a full random grid, re-checking uniqueness through the
// configured solver after every removal.
package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution using a
// provided Solver for the uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a puzzle from seed at the target difficulty.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{}, context.Canceled
	}

	puz := full
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = true
		}
	}
	order := rng.Perm(81)
	target := targetGivens(diff)
	givens := 81
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, p := range order {
		if givens <= target || time.Now().After(deadline) {
			break
		}
		r, c := p/9, p%9
		old := puz[r][c]
		puz[r][c] = 0
		fixed[r][c] = false
		unique, st, _ := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if unique {
			givens--
		} else {
			puz[r][c] = old
			fixed[r][c] = true
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: fixed},
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution,
// trying digits in random order per cell. Per-unit bitmasks keep the
// legality check O(1).
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var rows, cols, boxes [9]uint16
	var dfs func(p int) bool
	dfs = func(p int) bool {
		if ctx.Err() != nil {
			return false
		}
		if p == 81 {
			return true
		}
		r, c := p/9, p%9
		bx := (r/3)*3 + c/3
		for _, i := range rng.Perm(9) {
			v := uint8(i + 1)
			bit := uint16(1) << i
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[bx]&bit != 0 {
				continue
			}
			grid[r][c] = v
			rows[r] |= bit
			cols[c] |= bit
			boxes[bx] |= bit
			if dfs(p + 1) {
				return true
			}
			grid[r][c] = 0
			rows[r] &^= bit
			cols[c] &^= bit
			boxes[bx] &^= bit
		}
		return false
	}
	return dfs(0)
}
