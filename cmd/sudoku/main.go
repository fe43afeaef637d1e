// Command sudoku solves puzzles from the terminal. With no flags it
// solves a built-in sample and prints every solution; with -batch it
// processes a newline-delimited puzzle file and writes a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"svw.info/sudoku-solver/internal/batch"
	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

const sample = "48.3............71.2.......7.5....6....2..8.............1.76...3.....4......5...."

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewPropagationSolver()
	}
}

func main() {
	batchPath := flag.String("batch", "", "puzzle file to solve in batch mode (one 81-char line per puzzle, # for comments)")
	reportPath := flag.String("report", "performance.txt", "report file for batch mode")
	solverKind := flag.String("solver", "propagation", "solver to use: propagation|backtrack")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	s := pickSolver(*solverKind)
	if *batchPath != "" {
		if err := runBatch(logger, s, *batchPath, *reportPath); err != nil {
			logger.Error("batch failed", "err", err)
			os.Exit(1)
		}
		return
	}
	if err := solveSample(s); err != nil {
		logger.Error("sample failed", "err", err)
		os.Exit(1)
	}
}

// solveSample prints the sample puzzle and all of its solutions.
func solveSample(s ports.Solver) error {
	board, err := domain.ParseLine(sample)
	if err != nil {
		return err
	}
	fmt.Println("Sample:")
	fmt.Println(board)
	fmt.Println("Solutions:")
	st, err := s.Enumerate(context.Background(), board, 0, func(sol *domain.Board) bool {
		fmt.Println(sol)
		return true
	})
	if err != nil {
		return err
	}
	fmt.Printf("Elapsed time: %v (nodes=%d)\n", st.Duration, st.Nodes)
	return nil
}

func runBatch(logger *slog.Logger, s ports.Solver, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	sum, err := batch.NewRunner(s, logger).Run(context.Background(), in, out)
	if err != nil {
		return err
	}
	logger.Info("results written", "report", outPath, "puzzles", sum.Puzzles, "total", sum.Total.Round(time.Millisecond))
	return nil
}
