package booking

import (
	"context"
	"sync"
	"time"

	"github.com/luxesalon/salon-platform/internal/catalog"
)

// Step is the wizard position of a booking flow.
type Step int

const (
	StepServices Step = iota
	StepStylist
	StepDateTime
	StepConfirmation
)

// String returns the wire name of the step.
func (s Step) String() string {
	switch s {
	case StepServices:
		return "services"
	case StepStylist:
		return "stylist"
	case StepDateTime:
		return "datetime"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Selection is a read-only snapshot of a flow's accumulated choices.
type Selection struct {
	FlowID        string           `json:"flow_id"`
	Step          string           `json:"step"`
	Service       *catalog.Service `json:"service,omitempty"`
	Stylist       *catalog.Stylist `json:"stylist,omitempty"`
	Date          string           `json:"date,omitempty"`
	Time          string           `json:"time,omitempty"`
	CommitPending bool             `json:"commit_pending,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Flow is one in-progress booking. Steps only move forward one at a time,
// or back exactly one on Back; selections made in earlier steps survive
// backward navigation. The flow owns its own commit in-flight guard, so
// correctness does not depend on callers serializing requests.
type Flow struct {
	id            string
	commitLatency time.Duration
	createdAt     time.Time

	mu         sync.Mutex
	step       Step
	service    *catalog.Service
	stylist    *catalog.Stylist
	date       string
	timeSlot   string
	committing bool
}

func newFlow(id string, commitLatency time.Duration) *Flow {
	return &Flow{
		id:            id,
		commitLatency: commitLatency,
		createdAt:     time.Now().UTC(),
		step:          StepServices,
	}
}

// ID returns the flow identifier.
func (f *Flow) ID() string {
	return f.id
}

// Snapshot returns the current selection state.
func (f *Flow) Snapshot() Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Selection{
		FlowID:        f.id,
		Step:          f.step.String(),
		Service:       f.service,
		Stylist:       f.stylist,
		Date:          f.date,
		Time:          f.timeSlot,
		CommitPending: f.committing,
		CreatedAt:     f.createdAt,
	}
}

// ChooseService records the service selection and advances to the stylist
// step. Valid only in the services step.
func (f *Flow) ChooseService(svc *catalog.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.committing {
		return ErrCommitInFlight
	}
	if f.step != StepServices {
		return ErrInvalidTransition
	}
	f.service = svc
	f.step = StepStylist
	return nil
}

// ChooseStylist records the stylist selection and advances to the
// date/time step. Valid only in the stylist step.
func (f *Flow) ChooseStylist(st *catalog.Stylist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.committing {
		return ErrCommitInFlight
	}
	if f.step != StepStylist {
		return ErrInvalidTransition
	}
	f.stylist = st
	f.step = StepDateTime
	return nil
}

// Back moves exactly one step backward without clearing any selection.
// Refused in the services step and once the flow is confirmed.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.committing {
		return ErrCommitInFlight
	}
	switch f.step {
	case StepStylist:
		f.step = StepServices
	case StepDateTime:
		f.step = StepStylist
	default:
		return ErrInvalidTransition
	}
	return nil
}

// PickDate records the appointment date. Valid only in the date/time step;
// re-settable any number of times, and never clears a chosen time.
func (f *Flow) PickDate(date string) error {
	if date == "" {
		return ErrEmptySelection
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.committing {
		return ErrCommitInFlight
	}
	if f.step != StepDateTime {
		return ErrInvalidTransition
	}
	f.date = date
	return nil
}

// PickTime records the appointment time slot. Valid only in the date/time
// step; re-settable any number of times, and never clears a chosen date.
func (f *Flow) PickTime(slot string) error {
	if slot == "" {
		return ErrEmptySelection
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.committing {
		return ErrCommitInFlight
	}
	if f.step != StepDateTime {
		return ErrInvalidTransition
	}
	f.timeSlot = slot
	return nil
}

// Confirm runs the simulated booking commit and moves the flow to the
// terminal confirmation step. Valid only in the date/time step with both
// date and time selected; while the commit is pending every other
// transition, including a second Confirm, is refused. The commit itself
// performs no I/O and cannot fail; only ctx cancellation aborts it, in
// which case the flow stays in the date/time step.
func (f *Flow) Confirm(ctx context.Context) error {
	f.mu.Lock()
	if f.committing {
		f.mu.Unlock()
		return ErrCommitInFlight
	}
	if f.step != StepDateTime {
		f.mu.Unlock()
		return ErrInvalidTransition
	}
	if f.date == "" || f.timeSlot == "" {
		f.mu.Unlock()
		return ErrMissingDateTime
	}
	f.committing = true
	f.mu.Unlock()

	if f.commitLatency > 0 {
		timer := time.NewTimer(f.commitLatency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			f.mu.Lock()
			f.committing = false
			f.mu.Unlock()
			return ctx.Err()
		}
	}

	f.mu.Lock()
	f.committing = false
	f.step = StepConfirmation
	f.mu.Unlock()
	return nil
}
