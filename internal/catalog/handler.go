package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luxesalon/salon-platform/pkg/logging"
)

// Handler handles HTTP requests for the catalog
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListServices handles GET /catalog/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListServices(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": services, "count": len(services)})
}

// GetService handles GET /catalog/services/{serviceID}
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "serviceID")
	svc, err := h.repo.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			http.Error(w, "service not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load service", "error", err, "service_id", id)
		http.Error(w, "failed to load service", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// ListStylists handles GET /catalog/stylists
func (h *Handler) ListStylists(w http.ResponseWriter, r *http.Request) {
	stylists, err := h.repo.ListStylists(r.Context())
	if err != nil {
		h.logger.Error("failed to list stylists", "error", err)
		http.Error(w, "failed to list stylists", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stylists": stylists, "count": len(stylists)})
}

// GetStylist handles GET /catalog/stylists/{stylistID}
func (h *Handler) GetStylist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "stylistID")
	st, err := h.repo.GetStylist(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStylistNotFound) {
			http.Error(w, "stylist not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load stylist", "error", err, "stylist_id", id)
		http.Error(w, "failed to load stylist", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ListTimeSlots handles GET /catalog/slots
func (h *Handler) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.repo.ListTimeSlots(r.Context())
	if err != nil {
		h.logger.Error("failed to list time slots", "error", err)
		http.Error(w, "failed to list time slots", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"slots": slots, "count": len(slots)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
