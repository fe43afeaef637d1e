package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
)

// Singles suggests the next forced move from the engine's candidate
// state: a naked single (a cell down to one candidate) first, then a
// hidden single if the max tier allows.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	g := engine.FromGrid(b.Values)
	if g.Contradictory() {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if d, ok := g.Candidates(r, c).Sole(); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Naked single: only %d fits here", d),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Digit:    d,
					Strategy: domain.StrategyNakedSingle,
				}, true, nil
			}
		}
	}
	if max < domain.StrategyHiddenSingle {
		return domain.Hint{}, false, nil
	}
	if r, c, d, ok := g.HiddenSingle(); ok {
		return domain.Hint{
			Message:  fmt.Sprintf("Hidden single: %d has nowhere else to go in its unit", d),
			Cells:    []domain.CellCoord{{Row: r, Col: c}},
			Digit:    d,
			Strategy: domain.StrategyHiddenSingle,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
