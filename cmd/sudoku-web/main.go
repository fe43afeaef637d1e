// Command sudoku-web serves the solver as a JSON API, including a
// websocket endpoint that streams solutions as they are found.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/sudoku-solver/internal/adapters/http"
	"svw.info/sudoku-solver/internal/generator"
	"svw.info/sudoku-solver/internal/hint"
	"svw.info/sudoku-solver/internal/infrastructure/storage"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
	"svw.info/sudoku-solver/internal/usecase"
	"svw.info/sudoku-solver/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	solverKind := flag.String("solver", "propagation", "solver to use: propagation|backtrack")
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
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewPropagationSolver()
	}

	// Wire providers → use cases → HTTP adapter
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	uc := usecase.NewService(s, g, v, hin, st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "solver", *solverKind)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
