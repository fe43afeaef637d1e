package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleSolution = "487312695593684271126597384735849162914265837268731549851476923379128456642953718"

	sixWayPuzzle   = "....5.2......479..1.5.6.8..246......3.7...4.6......753..9.8.5....821......4.7...."
	sixWaySolution = "493158267862347915175962834246735198357891426981426753719683542538214679624579381"
)

func lineOf(g *Grid) string {
	var sb strings.Builder
	for p := 0; p < CellCount; p++ {
		sb.WriteByte('0' + g.values[p])
	}
	return sb.String()
}

func collect(t *testing.T, line string, max int) []string {
	t.Helper()
	g, err := FromLine(line)
	require.NoError(t, err)
	var out []string
	for sol := range g.Solutions() {
		require.True(t, sol.Solved())
		out = append(out, lineOf(sol))
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// checkSound verifies every row, column and box holds 1-9 exactly once.
func checkSound(t *testing.T, g *Grid) {
	t.Helper()
	for u, cells := range units {
		var seen DigitSet
		for _, p := range cells {
			v := g.values[p]
			require.NotZero(t, v, "unit %d has an empty cell", u)
			require.False(t, seen.Has(v), "unit %d repeats digit %d", u, v)
			seen |= SetOf(v)
		}
	}
}

func TestUniqueSolution(t *testing.T) {
	sols := collect(t, samplePuzzle, 0)
	require.Len(t, sols, 1)
	assert.Equal(t, sampleSolution, sols[0])
}

func TestSixSolutions(t *testing.T) {
	g, err := FromLine(sixWayPuzzle)
	require.NoError(t, err)
	var sols []string
	for sol := range g.Solutions() {
		checkSound(t, sol)
		// Givens survive into every solution.
		for p := 0; p < CellCount; p++ {
			if v := g.values[p]; v != 0 {
				require.Equal(t, v, sol.values[p], "given at %d overwritten", p)
			}
		}
		sols = append(sols, lineOf(sol))
	}
	require.Len(t, sols, 6)
	assert.Contains(t, sols, sixWaySolution)
}

func TestDeterministicOrder(t *testing.T) {
	first := collect(t, sixWayPuzzle, 0)
	second := collect(t, sixWayPuzzle, 0)
	assert.Equal(t, first, second)
}

func TestEmptyGridLazyTruncation(t *testing.T) {
	empty := strings.Repeat(".", CellCount)
	sols := collect(t, empty, 3)
	require.Len(t, sols, 3)
	for _, s := range sols {
		g, err := FromLine(s)
		require.NoError(t, err)
		checkSound(t, g)
	}
	// More than one completion exists.
	assert.NotEqual(t, sols[0], sols[1])
}

func TestBranchingLeavesSiblingsUntouched(t *testing.T) {
	g, err := FromLine(sixWayPuzzle)
	require.NoError(t, err)
	snapshot := *g

	// Consume a single solution, which explores one side of the tree.
	for range g.Solutions() {
		break
	}
	assert.Equal(t, snapshot.values, g.values)
	assert.Equal(t, snapshot.candidates, g.candidates)
}

func TestNoSolutionForInfeasibleGrid(t *testing.T) {
	// Valid-looking givens with no completion: a cell whose row, column
	// and box together exclude all nine digits.
	line := "12345678" + strings.Repeat(".", 9) + "9" + strings.Repeat(".", 63)
	g, err := FromLine(line)
	require.NoError(t, err)
	count := 0
	for range g.Solutions() {
		count++
	}
	assert.Zero(t, count)
}

func TestHiddenSingle(t *testing.T) {
	// 1s at (1,3), (2,6), (4,1) and (5,2) leave (0,0) as the only home
	// for digit 1 inside the top-left box, even though that cell's own
	// candidate set holds other digits too.
	var board [Size][Size]uint8
	board[1][3] = 1
	board[2][6] = 1
	board[4][1] = 1
	board[5][2] = 1
	g := FromGrid(board)
	require.False(t, g.Contradictory())
	require.Greater(t, g.Candidates(0, 0).Count(), 1)

	row, col, d, ok := g.HiddenSingle()
	require.True(t, ok)
	assert.Equal(t, uint8(1), d)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
}

func TestNodeCounting(t *testing.T) {
	g, err := FromLine(samplePuzzle)
	require.NoError(t, err)
	nodes := 0
	count := 0
	for range g.SolutionsCounted(&nodes) {
		count++
	}
	require.Equal(t, 1, count)
	assert.Positive(t, nodes)
}
