package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/enumerate", h.handleEnumerate)
	mux.HandleFunc("/api/solve/stream", h.handleSolveStream)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// boardReq is the common request shape: a 9x9 grid or an 81-char line.
type boardReq struct {
	Board [9][9]uint8 `json:"board,omitempty"`
	Line  string      `json:"line,omitempty"`
}

func (r *boardReq) toBoard() (*domain.Board, error) {
	if r.Line != "" {
		return domain.ParseLine(r.Line)
	}
	return &domain.Board{Values: r.Board}, nil
}

// ---- Solve ----

type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	Line       string      `json:"line,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := req.toBoard()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Board:      out.Values,
		Line:       out.Line(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Enumerate ----

type enumerateReq struct {
	boardReq
	Limit int `json:"limit,omitempty"`
}

type enumerateResp struct {
	Solutions  []string `json:"solutions"`
	Count      int      `json:"count"`
	Truncated  bool     `json:"truncated,omitempty"`
	DurationMs int64    `json:"durationMs,omitempty"`
	Nodes      int      `json:"nodes,omitempty"`
	Error      string   `json:"error,omitempty"`
}

const defaultEnumerateLimit = 100

func (h *Handler) handleEnumerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req enumerateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := req.toBoard()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: err.Error()})
		return
	}
	limit := req.Limit
	if limit <= 0 || limit > defaultEnumerateLimit {
		limit = defaultEnumerateLimit
	}
	var sols []string
	st, err := h.UC.Enumerate(r.Context(), in, limit, func(sol *domain.Board) bool {
		sols = append(sols, sol.Line())
		return true
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(enumerateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(enumerateResp{
		Solutions:  sols,
		Count:      len(sols),
		Truncated:  len(sols) == limit,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := req.toBoard()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), in)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	boardReq
	MaxTier string `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naked":
		return domain.StrategyNakedSingle
	default:
		return domain.StrategyHiddenSingle
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := req.toBoard()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), in, parseTier(req.MaxTier))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(hintResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(hintResp{Found: ok, Hint: hh})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func parseDifficulty(s string) domain.Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return domain.Easy
	case "hard":
		return domain.Hard
	case "expert":
		return domain.Expert
	default:
		return domain.Medium
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, st, err := h.UC.Generate(r.Context(), seed, parseDifficulty(req.Difficulty))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(generateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(generateResp{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: req.Difficulty,
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: ps})
}
