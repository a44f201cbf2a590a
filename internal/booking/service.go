package booking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/luxesalon/salon-platform/internal/catalog"
	"github.com/luxesalon/salon-platform/internal/observability/metrics"
	"github.com/luxesalon/salon-platform/pkg/logging"
)

var bookingTracer = otel.Tracer("salon.internal.booking")

// Service drives booking flows. Selections are resolved against the
// catalog before they reach a flow, so only catalog items are selectable.
type Service struct {
	store   *Store
	catalog catalog.Repository
	metrics *metrics.BookingMetrics
	logger  *logging.Logger
}

// NewService constructs a booking service.
func NewService(store *Store, cat catalog.Repository, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if store == nil {
		panic("booking: store required")
	}
	if cat == nil {
		panic("booking: catalog repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{store: store, catalog: cat, metrics: m, logger: logger}
}

// Start creates a new flow in the services step.
func (s *Service) Start(ctx context.Context) (Selection, error) {
	flow, err := s.store.Create(ctx)
	if err != nil {
		return Selection{}, err
	}
	s.logger.Info("booking flow started", "flow_id", flow.ID())
	return flow.Snapshot(), nil
}

// Get returns the current selection state of a flow.
func (s *Service) Get(ctx context.Context, flowID string) (Selection, error) {
	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}
	return flow.Snapshot(), nil
}

// Abandon discards the flow entirely.
func (s *Service) Abandon(ctx context.Context, flowID string) error {
	if err := s.store.Delete(ctx, flowID); err != nil {
		return err
	}
	s.logger.Info("booking flow abandoned", "flow_id", flowID)
	return nil
}

// ChooseService selects a catalog service and advances the flow.
func (s *Service) ChooseService(ctx context.Context, flowID, serviceID string) (Selection, error) {
	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}
	svc, err := s.catalog.GetService(ctx, serviceID)
	if err != nil {
		return Selection{}, err
	}
	if err := flow.ChooseService(svc); err != nil {
		s.metrics.ObserveTransition("choose_service", "refused")
		return Selection{}, err
	}
	s.metrics.ObserveTransition("choose_service", "ok")
	return flow.Snapshot(), nil
}

// ChooseStylist selects a stylist and advances the flow.
func (s *Service) ChooseStylist(ctx context.Context, flowID, stylistID string) (Selection, error) {
	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}
	st, err := s.catalog.GetStylist(ctx, stylistID)
	if err != nil {
		return Selection{}, err
	}
	if err := flow.ChooseStylist(st); err != nil {
		s.metrics.ObserveTransition("choose_stylist", "refused")
		return Selection{}, err
	}
	s.metrics.ObserveTransition("choose_stylist", "ok")
	return flow.Snapshot(), nil
}

// Back navigates the flow one step backward.
func (s *Service) Back(ctx context.Context, flowID string) (Selection, error) {
	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}
	if err := flow.Back(); err != nil {
		s.metrics.ObserveTransition("back", "refused")
		return Selection{}, err
	}
	s.metrics.ObserveTransition("back", "ok")
	return flow.Snapshot(), nil
}

// PickDate records the appointment date.
func (s *Service) PickDate(ctx context.Context, flowID, date string) (Selection, error) {
	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}
	if err := flow.PickDate(date); err != nil {
		s.metrics.ObserveTransition("pick_date", "refused")
		return Selection{}, err
	}
	s.metrics.ObserveTransition("pick_date", "ok")
	return flow.Snapshot(), nil
}

// PickTime records the appointment time slot. The slot must be one of the
// fixed catalog slots; availability is never checked.
func (s *Service) PickTime(ctx context.Context, flowID, slot string) (Selection, error) {
	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}
	if slot != "" && !s.catalog.HasTimeSlot(ctx, slot) {
		return Selection{}, catalog.ErrSlotNotFound
	}
	if err := flow.PickTime(slot); err != nil {
		s.metrics.ObserveTransition("pick_time", "refused")
		return Selection{}, err
	}
	s.metrics.ObserveTransition("pick_time", "ok")
	return flow.Snapshot(), nil
}

// Confirm runs the simulated commit and moves the flow to confirmation.
func (s *Service) Confirm(ctx context.Context, flowID string) (Selection, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.confirm")
	defer span.End()
	span.SetAttributes(attribute.String("salon.flow_id", flowID))

	flow, err := s.store.Get(ctx, flowID)
	if err != nil {
		return Selection{}, err
	}

	start := time.Now()
	if err := flow.Confirm(ctx); err != nil {
		span.RecordError(err)
		s.metrics.ObserveTransition("confirm", "refused")
		return Selection{}, err
	}
	s.metrics.ObserveTransition("confirm", "ok")
	s.metrics.ObserveConfirmed(time.Since(start).Seconds())

	sel := flow.Snapshot()
	s.logger.Info("booking confirmed",
		"flow_id", flowID,
		"service", sel.Service.Name,
		"stylist", sel.Stylist.Name,
		"date", sel.Date,
		"time", sel.Time,
	)
	return sel, nil
}
