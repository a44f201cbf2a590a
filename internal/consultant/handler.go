package consultant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/luxesalon/salon-platform/pkg/logging"
)

// Handler handles HTTP requests for the consultant chat widget
type Handler struct {
	gateway *FallbackGateway
	logger  *logging.Logger
}

// NewHandler creates a new consultant chat handler
func NewHandler(gateway *FallbackGateway, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{gateway: gateway, logger: logger}
}

type messageRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

type messageResponse struct {
	SessionID string  `json:"session_id"`
	Reply     Message `json:"reply"`
}

// SendMessage handles POST /chat/message
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply, err := h.gateway.Send(r.Context(), req.SessionID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrSessionBusy):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.logger.Error("chat message failed", "error", err, "session_id", req.SessionID)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messageResponse{
		SessionID: req.SessionID,
		Reply:     reply,
	})
}

// GetHistory handles GET /chat/history?session=...
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	messages, err := h.gateway.History(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to load chat history", "error", err, "session_id", sessionID)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"session_id": sessionID,
		"messages":   messages,
	})
}
