package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	s := solver.NewPropagationSolver()
	g := NewUniqueGenerator(s)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Values[r][c] != 0 {
						givens++
						if !p.Board.Fixed[r][c] {
							t.Fatalf("given at (%d,%d) not marked fixed", r, c)
						}
					}
				}
			}
			if givens < 17 || givens > 81 {
				t.Fatalf("implausible givens count for %s: %d", tc.name, givens)
			}
			ok, _, err := s.Unique(ctx, &p.Board)
			if err != nil || !ok {
				t.Fatalf("puzzle for %s is not unique (err=%v)", tc.name, err)
			}
			t.Logf("%s: %d givens in %v (nodes=%d)", tc.name, givens, st.Duration, st.Nodes)
		})
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewPropagationSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 99, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := g.Generate(ctx, 99, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Board.Values != b.Board.Values {
		t.Fatal("same seed produced different puzzles")
	}
}
