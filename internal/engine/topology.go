// Package engine is the solving core: a grid of fixed values with
// per-cell candidate sets, constraint propagation that cascades forced
// moves through a single assignment path, and a depth-first search
// that branches on the most constrained cell only when propagation has
// nothing left to force. Solutions come out as a lazy sequence; the
// consumer stopping early prunes the rest of the tree.
package engine

// Board geometry. Positions are row-major indices 0..80.
const (
	Size      = 9
	CellCount = Size * Size
	UnitCount = 27
	PeerCount = 20
)

// units holds the 27 constraint groups in a fixed order:
// rows 0-8, columns 9-17, boxes 18-26. Each unit must contain the
// digits 1-9 exactly once.
var units [UnitCount][Size]int

// peers[p] lists the 20 positions sharing a row, column or box with p.
var peers [CellCount][PeerCount]int

func pos(row, col int) int { return row*Size + col }

func init() {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			units[i][j] = pos(i, j)
			units[Size+i][j] = pos(j, i)
		}
		br, bc := (i/3)*3, (i%3)*3
		for d := 0; d < Size; d++ {
			units[2*Size+i][d] = pos(br+d/3, bc+d%3)
		}
	}
	for p := 0; p < CellCount; p++ {
		r, c := p/Size, p%Size
		n := 0
		seen := [CellCount]bool{}
		add := func(q int) {
			if q != p && !seen[q] {
				seen[q] = true
				peers[p][n] = q
				n++
			}
		}
		for i := 0; i < Size; i++ {
			add(pos(r, i))
			add(pos(i, c))
		}
		br, bc := (r/3)*3, (c/3)*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				add(pos(br+dr, bc+dc))
			}
		}
	}
}
