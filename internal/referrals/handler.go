package referrals

import (
	"encoding/json"
	"net/http"

	"github.com/luxesalon/salon-platform/pkg/logging"
)

// Handler handles HTTP requests for referral rewards
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new referrals handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// GetStats handles GET /referrals/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.repo.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to load referral stats", "error", err)
		http.Error(w, "failed to load referral stats", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

// ListHistory handles GET /referrals/history
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.repo.ListHistory(r.Context())
	if err != nil {
		h.logger.Error("failed to load referral history", "error", err)
		http.Error(w, "failed to load referral history", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"history": history, "count": len(history)})
}
