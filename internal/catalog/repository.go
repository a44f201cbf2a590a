package catalog

import "context"

// Repository defines read-only access to the salon catalog. Reads are
// synchronous; a real data store can be swapped in behind this interface
// without changing any consumer.
type Repository interface {
	ListServices(ctx context.Context) ([]Service, error)
	GetService(ctx context.Context, id string) (*Service, error)
	ListStylists(ctx context.Context) ([]Stylist, error)
	GetStylist(ctx context.Context, id string) (*Stylist, error)
	ListTimeSlots(ctx context.Context) ([]string, error)
	HasTimeSlot(ctx context.Context, slot string) bool
}

// InMemoryRepository serves the compiled-in catalog. Contents are fixed at
// construction, so no locking is needed.
type InMemoryRepository struct {
	services []Service
	stylists []Stylist
	slots    []string

	serviceByID map[string]*Service
	stylistByID map[string]*Stylist
	slotSet     map[string]struct{}
}

// NewInMemoryRepository creates a repository seeded with the static catalog.
func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{
		services:    seedServices(),
		stylists:    seedStylists(),
		slots:       seedTimeSlots(),
		serviceByID: make(map[string]*Service),
		stylistByID: make(map[string]*Stylist),
		slotSet:     make(map[string]struct{}),
	}
	for i := range r.services {
		r.serviceByID[r.services[i].ID] = &r.services[i]
	}
	for i := range r.stylists {
		r.stylistByID[r.stylists[i].ID] = &r.stylists[i]
	}
	for _, slot := range r.slots {
		r.slotSet[slot] = struct{}{}
	}
	return r
}

// ListServices returns every catalog service in display order.
func (r *InMemoryRepository) ListServices(ctx context.Context) ([]Service, error) {
	return r.services, nil
}

// GetService returns the service with the given ID.
func (r *InMemoryRepository) GetService(ctx context.Context, id string) (*Service, error) {
	svc, ok := r.serviceByID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// ListStylists returns every stylist in display order.
func (r *InMemoryRepository) ListStylists(ctx context.Context) ([]Stylist, error) {
	return r.stylists, nil
}

// GetStylist returns the stylist with the given ID.
func (r *InMemoryRepository) GetStylist(ctx context.Context, id string) (*Stylist, error) {
	st, ok := r.stylistByID[id]
	if !ok {
		return nil, ErrStylistNotFound
	}
	return st, nil
}

// ListTimeSlots returns the fixed ordered slot list.
func (r *InMemoryRepository) ListTimeSlots(ctx context.Context) ([]string, error) {
	return r.slots, nil
}

// HasTimeSlot reports whether slot is one of the fixed time slots.
func (r *InMemoryRepository) HasTimeSlot(ctx context.Context, slot string) bool {
	_, ok := r.slotSet[slot]
	return ok
}
