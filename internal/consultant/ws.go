package consultant

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"
)

// InboundFrame is what the chat widget sends over the WebSocket.
type InboundFrame struct {
	Type string `json:"type"` // "message", "ping"
	Text string `json:"text,omitempty"`
}

// OutboundFrame is what the server sends to the widget.
type OutboundFrame struct {
	Type      string    `json:"type"` // "session", "history", "typing", "message", "pong", "error"
	SessionID string    `json:"session_id,omitempty"`
	Message   *Message  `json:"message,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	Text      string    `json:"text,omitempty"`
}

// HandleWebSocket upgrades to WebSocket and serves the modal chat widget.
// Each connection is bound to one session; messages are handled one at a
// time in arrival order, so replies land in invocation order.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	_ = websocket.JSON.Send(conn, OutboundFrame{Type: "session", SessionID: sessionID})

	if history, err := h.gateway.History(r.Context(), sessionID); err == nil && len(history) > 0 {
		_ = websocket.JSON.Send(conn, OutboundFrame{Type: "history", Messages: history})
	}

	h.logger.Info("chat connection opened", "session_id", sessionID)
	defer h.logger.Debug("chat connection closed", "session_id", sessionID)

	for {
		var frame InboundFrame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			return
		}

		if frame.Type == "ping" {
			_ = websocket.JSON.Send(conn, OutboundFrame{Type: "pong"})
			continue
		}
		if frame.Type != "message" || strings.TrimSpace(frame.Text) == "" {
			continue
		}

		_ = websocket.JSON.Send(conn, OutboundFrame{Type: "typing"})

		reply, err := h.gateway.Send(r.Context(), sessionID, frame.Text)
		if err != nil {
			// Only caller-input errors reach here; backend failures were
			// already converted into fallback replies.
			_ = websocket.JSON.Send(conn, OutboundFrame{Type: "error", Text: err.Error()})
			continue
		}

		_ = websocket.JSON.Send(conn, OutboundFrame{Type: "message", Message: &reply})
	}
}
