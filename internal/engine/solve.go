package engine

import "iter"

// Solutions lazily enumerates every completion of g, depth-first, in a
// deterministic order. Breaking out of the range stops the search;
// branches never visited cost nothing. g itself is never mutated:
// every speculative step works on a clone.
//
// Per recursion level the engine consumes one hidden single if any
// exists (cloning and committing it, which cascades internally), and
// only branches when propagation has nothing forced left: it picks the
// empty cell with the fewest candidates and tries each in ascending
// digit order on a fresh clone. Contradictory clones are discarded
// silently; contradiction is pruning, not an error.
func (g *Grid) Solutions() iter.Seq[*Grid] {
	return g.solutions(new(int))
}

// SolutionsCounted is Solutions with node accounting: *nodes is
// incremented for every speculative or forced assignment the search
// performs.
func (g *Grid) SolutionsCounted(nodes *int) iter.Seq[*Grid] {
	return g.solutions(nodes)
}

func (g *Grid) solutions(nodes *int) iter.Seq[*Grid] {
	return func(yield func(*Grid) bool) {
		if !g.contradiction {
			g.solve(yield, nodes)
		}
	}
}

// solve returns false once the consumer has stopped the enumeration.
func (g *Grid) solve(yield func(*Grid) bool, nodes *int) bool {
	if p, d, ok := g.hiddenSingle(); ok {
		*nodes++
		next := g.Clone()
		next.SetDigit(p, d)
		if next.contradiction {
			return true
		}
		return next.solve(yield, nodes)
	}

	p, ok := g.branchCell()
	if !ok {
		// No empty cell left: this grid is a solution.
		return yield(g)
	}
	for _, d := range g.candidates[p].Digits() {
		*nodes++
		next := g.Clone()
		next.SetDigit(p, d)
		if next.contradiction {
			continue
		}
		if !next.solve(yield, nodes) {
			return false
		}
	}
	return true
}

// HiddenSingle reports the first hidden single on the grid, if any:
// a digit with exactly one empty cell left that can host it within
// some unit, even though that cell's own candidate set may still hold
// other digits.
func (g *Grid) HiddenSingle() (row, col int, d uint8, ok bool) {
	p, d, ok := g.hiddenSingle()
	return p / Size, p % Size, d, ok
}

// hiddenSingle scans all 27 units. Digits 1-9 form the outer loop and
// units are visited rows, then columns, then boxes, so the first hit
// is deterministic.
func (g *Grid) hiddenSingle() (p int, d uint8, ok bool) {
	for d = 1; d <= Size; d++ {
		for u := range units {
			spot, n := -1, 0
			for _, q := range units[u] {
				if g.values[q] == 0 && g.candidates[q].Has(d) {
					spot = q
					n++
					if n > 1 {
						break
					}
				}
			}
			if n == 1 {
				return spot, d, true
			}
		}
	}
	return 0, 0, false
}

// branchCell picks the empty cell with the fewest candidates, ties
// broken row-major. ok is false when the grid has no empty cell.
func (g *Grid) branchCell() (int, bool) {
	best, bestCount := -1, Size+1
	for p := 0; p < CellCount; p++ {
		if g.values[p] != 0 {
			continue
		}
		if n := g.candidates[p].Count(); n < bestCount {
			best, bestCount = p, n
		}
	}
	return best, best >= 0
}
