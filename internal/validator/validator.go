package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator checks the row/col/box uniqueness rule with one bitmask
// per unit. It reports the cells holding a digit already seen earlier
// in the same unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		m := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}
	var cells [9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			cells[j] = domain.CellCoord{Row: i, Col: j}
		}
		scan(cells)
		for j := 0; j < 9; j++ {
			cells[j] = domain.CellCoord{Row: j, Col: i}
		}
		scan(cells)
		br, bc := (i/3)*3, (i%3)*3
		for j := 0; j < 9; j++ {
			cells[j] = domain.CellCoord{Row: br + j/3, Col: bc + j%3}
		}
		scan(cells)
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether the board is fully filled and conflict-free.
func (v *FastValidator) Complete(ctx context.Context, b *domain.Board) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false, nil
			}
		}
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
