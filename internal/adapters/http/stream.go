package httpadapter

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"svw.info/sudoku-solver/internal/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin policy is left to the deployment; the API carries no
	// credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamMsg is one websocket frame: a solution as it is found, then a
// final frame with Done set.
type streamMsg struct {
	Solution string `json:"solution,omitempty"`
	Index    int    `json:"index,omitempty"`
	Done     bool   `json:"done,omitempty"`
	Count    int    `json:"count,omitempty"`
	Error    string `json:"error,omitempty"`
}

const writeWait = 10 * time.Second

// handleSolveStream upgrades to a websocket and pushes each solution
// the moment the engine yields it. The client going away cancels the
// enumeration, so branches it never asked for are never explored.
// Query parameters: puzzle (81-char line, required), limit (optional).
func (h *Handler) handleSolveStream(w http.ResponseWriter, r *http.Request) {
	line := r.URL.Query().Get("puzzle")
	board, err := domain.ParseLine(line)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	// Drain control frames and cancel the search once the peer closes.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	count := 0
	_, err = h.UC.Enumerate(ctx, board, limit, func(sol *domain.Board) bool {
		count++
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(streamMsg{Solution: sol.Line(), Index: count}) == nil
	})

	final := streamMsg{Done: true, Count: count}
	if err != nil && ctx.Err() == nil {
		final.Error = err.Error()
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteJSON(final)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}
