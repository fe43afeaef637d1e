package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadLength reports a puzzle line that is not exactly 81 characters.
var ErrBadLength = errors.New("puzzle line must be exactly 81 characters")

// Grid is one node of the search: the fixed values plus, per cell, the
// digits still consistent with every known peer value. Once any
// candidate set has been driven empty the grid is contradictory and
// represents no completion; it must be discarded, not searched.
//
// Grid is a flat value struct, so Clone is a single struct copy and
// clones never alias each other's state.
type Grid struct {
	values        [CellCount]uint8
	candidates    [CellCount]DigitSet
	contradiction bool
}

// FromLine builds a Grid from an 81-character row-major puzzle line.
// '1'-'9' are givens; any other character is an empty cell. Newlines
// are ignored so lines read straight from a file work unchanged.
func FromLine(line string) (*Grid, error) {
	line = strings.ReplaceAll(line, "\n", "")
	if len(line) != CellCount {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, len(line))
	}
	g := &Grid{}
	for p := 0; p < CellCount; p++ {
		if ch := line[p]; ch >= '1' && ch <= '9' {
			g.values[p] = ch - '0'
		}
	}
	g.seedCandidates()
	return g, nil
}

// FromGrid builds a Grid from a 9x9 array, 0 meaning empty.
func FromGrid(board [Size][Size]uint8) *Grid {
	g := &Grid{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g.values[pos(r, c)] = board[r][c]
		}
	}
	g.seedCandidates()
	return g
}

// seedCandidates derives every candidate set from scratch: the digits
// 1-9 minus the values held by peers, intersected with the cell's own
// given if it has one. Two equal givens in a unit therefore empty each
// other's set and the grid starts out contradictory, before any search.
// This runs only at construction; all later updates go through
// SetDigit / removeCandidate.
func (g *Grid) seedCandidates() {
	for p := 0; p < CellCount; p++ {
		s := AllDigits
		for _, q := range peers[p] {
			if v := g.values[q]; v != 0 {
				s = s.Without(v)
			}
		}
		if v := g.values[p]; v != 0 {
			s &= SetOf(v)
		}
		g.candidates[p] = s
		if s == 0 {
			g.contradiction = true
		}
	}
}

// Clone returns an independent copy. Mutating the copy never touches
// the original, which is what makes speculative branching safe.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Contradictory reports whether some candidate set has been emptied.
func (g *Grid) Contradictory() bool { return g.contradiction }

// Value returns the digit at (row, col), 0 if empty.
func (g *Grid) Value(row, col int) uint8 { return g.values[pos(row, col)] }

// Candidates returns the candidate set at (row, col).
func (g *Grid) Candidates(row, col int) DigitSet { return g.candidates[pos(row, col)] }

// Solved reports whether every cell holds a digit.
func (g *Grid) Solved() bool {
	for p := 0; p < CellCount; p++ {
		if g.values[p] == 0 {
			return false
		}
	}
	return !g.contradiction
}

// Grid9 returns the values as a 9x9 array, 0 meaning empty.
func (g *Grid) Grid9() [Size][Size]uint8 {
	var out [Size][Size]uint8
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][c] = g.values[pos(r, c)]
		}
	}
	return out
}

// SetDigit commits d at position p: the cell's candidates collapse to
// {d} and d is removed from all 20 peers. Removal that leaves a peer
// with one candidate re-enters SetDigit on that peer, so forced chains
// propagate to fixed point through this one code path. The peer loop
// stops the moment the grid turns contradictory.
func (g *Grid) SetDigit(p int, d uint8) {
	g.values[p] = d
	g.candidates[p] = SetOf(d)
	for _, q := range peers[p] {
		g.removeCandidate(q, d)
		if g.contradiction {
			return
		}
	}
}

// removeCandidate drops d from the set at p. Emptying the set marks
// the grid contradictory; shrinking it to one digit commits that digit
// (a naked single).
func (g *Grid) removeCandidate(p int, d uint8) {
	if !g.candidates[p].Has(d) {
		return
	}
	g.candidates[p] = g.candidates[p].Without(d)
	switch g.candidates[p].Count() {
	case 0:
		g.contradiction = true
	case 1:
		if g.values[p] == 0 {
			sole, _ := g.candidates[p].Sole()
			g.SetDigit(p, sole)
		}
	}
}
