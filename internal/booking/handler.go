package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luxesalon/salon-platform/internal/catalog"
	"github.com/luxesalon/salon-platform/pkg/logging"
)

// Handler handles HTTP requests for the booking wizard
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new booking handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type selectionRequest struct {
	ServiceID string `json:"service_id,omitempty"`
	StylistID string `json:"stylist_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
}

// StartFlow handles POST /bookings
func (h *Handler) StartFlow(w http.ResponseWriter, r *http.Request) {
	sel, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start booking flow", "error", err)
		http.Error(w, "failed to start booking flow", http.StatusInternalServerError)
		return
	}
	h.writeSelection(w, http.StatusCreated, sel)
}

// GetFlow handles GET /bookings/{flowID}
func (h *Handler) GetFlow(w http.ResponseWriter, r *http.Request) {
	sel, err := h.service.Get(r.Context(), chi.URLParam(r, "flowID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

// AbandonFlow handles DELETE /bookings/{flowID}
func (h *Handler) AbandonFlow(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Abandon(r.Context(), chi.URLParam(r, "flowID")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChooseService handles POST /bookings/{flowID}/service
func (h *Handler) ChooseService(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	sel, err := h.service.ChooseService(r.Context(), chi.URLParam(r, "flowID"), req.ServiceID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

// ChooseStylist handles POST /bookings/{flowID}/stylist
func (h *Handler) ChooseStylist(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	sel, err := h.service.ChooseStylist(r.Context(), chi.URLParam(r, "flowID"), req.StylistID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

// Back handles POST /bookings/{flowID}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sel, err := h.service.Back(r.Context(), chi.URLParam(r, "flowID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

// PickDate handles POST /bookings/{flowID}/date
func (h *Handler) PickDate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	sel, err := h.service.PickDate(r.Context(), chi.URLParam(r, "flowID"), req.Date)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

// PickTime handles POST /bookings/{flowID}/time
func (h *Handler) PickTime(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	sel, err := h.service.PickTime(r.Context(), chi.URLParam(r, "flowID"), req.Time)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

// Confirm handles POST /bookings/{flowID}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	sel, err := h.service.Confirm(r.Context(), chi.URLParam(r, "flowID"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeSelection(w, http.StatusOK, sel)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (selectionRequest, bool) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return selectionRequest{}, false
	}
	return req, true
}

func (h *Handler) writeSelection(w http.ResponseWriter, status int, sel Selection) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(sel)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrFlowNotFound),
		errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, catalog.ErrStylistNotFound),
		errors.Is(err, catalog.ErrSlotNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrMissingDateTime),
		errors.Is(err, ErrCommitInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrEmptySelection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("booking request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
