package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luxesalon/salon-platform/internal/catalog"
)

func testCatalogItems(t *testing.T) (*catalog.Service, *catalog.Stylist) {
	t.Helper()
	repo := catalog.NewInMemoryRepository()
	svc, err := repo.GetService(context.Background(), "s2")
	if err != nil {
		t.Fatalf("load service: %v", err)
	}
	st, err := repo.GetStylist(context.Background(), "st2")
	if err != nil {
		t.Fatalf("load stylist: %v", err)
	}
	return svc, st
}

func TestFlowHappyPath(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 0)

	if err := flow.ChooseService(svc); err != nil {
		t.Fatalf("choose service: %v", err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatalf("choose stylist: %v", err)
	}
	if err := flow.PickDate("Mon Jan 01 2024"); err != nil {
		t.Fatalf("pick date: %v", err)
	}
	if err := flow.PickTime("10:00 AM"); err != nil {
		t.Fatalf("pick time: %v", err)
	}
	if err := flow.Confirm(context.Background()); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	sel := flow.Snapshot()
	if sel.Step != "confirmation" {
		t.Errorf("expected confirmation step, got %q", sel.Step)
	}
	if sel.Service.Name != "Beard Sculpting" {
		t.Errorf("expected service Beard Sculpting, got %q", sel.Service.Name)
	}
	if sel.Stylist.Name != "Marcus Chen" {
		t.Errorf("expected stylist Marcus Chen, got %q", sel.Stylist.Name)
	}
	if sel.Date != "Mon Jan 01 2024" {
		t.Errorf("expected date Mon Jan 01 2024, got %q", sel.Date)
	}
	if sel.Time != "10:00 AM" {
		t.Errorf("expected time 10:00 AM, got %q", sel.Time)
	}
}

func TestFlowRefusesOutOfOrderTransitions(t *testing.T) {
	svc, st := testCatalogItems(t)

	flow := newFlow("flow-1", 0)
	before := flow.Snapshot()

	if err := flow.ChooseStylist(st); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition choosing stylist first, got %v", err)
	}
	if err := flow.PickDate("Mon Jan 01 2024"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition picking date first, got %v", err)
	}
	if err := flow.PickTime("10:00 AM"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition picking time first, got %v", err)
	}
	if err := flow.Confirm(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition confirming first, got %v", err)
	}
	if got := flow.Snapshot(); got != before {
		t.Errorf("refused transitions must leave state unchanged: %+v != %+v", got, before)
	}

	// A second service selection without navigating back is also refused.
	if err := flow.ChooseService(svc); err != nil {
		t.Fatalf("choose service: %v", err)
	}
	if err := flow.ChooseService(svc); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition re-choosing service, got %v", err)
	}
}

func TestConfirmRequiresDateAndTime(t *testing.T) {
	svc, st := testCatalogItems(t)

	cases := []struct {
		name string
		date string
		time string
	}{
		{"neither", "", ""},
		{"date only", "Mon Jan 01 2024", ""},
		{"time only", "", "10:00 AM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow := newFlow("flow-1", 0)
			if err := flow.ChooseService(svc); err != nil {
				t.Fatalf("choose service: %v", err)
			}
			if err := flow.ChooseStylist(st); err != nil {
				t.Fatalf("choose stylist: %v", err)
			}
			if tc.date != "" {
				if err := flow.PickDate(tc.date); err != nil {
					t.Fatalf("pick date: %v", err)
				}
			}
			if tc.time != "" {
				if err := flow.PickTime(tc.time); err != nil {
					t.Fatalf("pick time: %v", err)
				}
			}

			before := flow.Snapshot()
			if err := flow.Confirm(context.Background()); !errors.Is(err, ErrMissingDateTime) {
				t.Fatalf("expected ErrMissingDateTime, got %v", err)
			}
			if got := flow.Snapshot(); got != before {
				t.Errorf("refused confirm must leave state unchanged")
			}
		})
	}
}

func TestDateAndTimeAreIndependent(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 0)
	if err := flow.ChooseService(svc); err != nil {
		t.Fatal(err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatal(err)
	}

	if err := flow.PickTime("10:00 AM"); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickDate("Mon Jan 01 2024"); err != nil {
		t.Fatal(err)
	}
	if sel := flow.Snapshot(); sel.Time != "10:00 AM" {
		t.Errorf("picking a date cleared the chosen time: %q", sel.Time)
	}

	if err := flow.PickDate("Tue Jan 02 2024"); err != nil {
		t.Fatal(err)
	}
	sel := flow.Snapshot()
	if sel.Date != "Tue Jan 02 2024" {
		t.Errorf("expected re-set date, got %q", sel.Date)
	}
	if sel.Time != "10:00 AM" {
		t.Errorf("re-setting the date cleared the chosen time: %q", sel.Time)
	}
}

func TestBackPreservesSelections(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 0)
	if err := flow.ChooseService(svc); err != nil {
		t.Fatal(err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatal(err)
	}

	if err := flow.Back(); err != nil {
		t.Fatalf("back to stylist: %v", err)
	}
	if sel := flow.Snapshot(); sel.Step != "stylist" || sel.Service == nil || sel.Stylist == nil {
		t.Fatalf("back must move one step and preserve selections: %+v", sel)
	}

	if err := flow.Back(); err != nil {
		t.Fatalf("back to services: %v", err)
	}
	if sel := flow.Snapshot(); sel.Step != "services" || sel.Service == nil {
		t.Fatalf("back must preserve the chosen service: %+v", sel)
	}

	// One-step only: a third back from the first step is refused.
	if err := flow.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition backing out of services, got %v", err)
	}
}

// Re-selecting the same service after navigating back yields the same
// confirmation output as never having navigated back.
func TestReselectionRoundTrip(t *testing.T) {
	svc, st := testCatalogItems(t)

	run := func(backtrack bool) Selection {
		flow := newFlow("flow-1", 0)
		if err := flow.ChooseService(svc); err != nil {
			t.Fatal(err)
		}
		if err := flow.ChooseStylist(st); err != nil {
			t.Fatal(err)
		}
		if backtrack {
			if err := flow.Back(); err != nil {
				t.Fatal(err)
			}
			if err := flow.Back(); err != nil {
				t.Fatal(err)
			}
			if err := flow.ChooseService(svc); err != nil {
				t.Fatal(err)
			}
			if err := flow.ChooseStylist(st); err != nil {
				t.Fatal(err)
			}
		}
		if err := flow.PickDate("Mon Jan 01 2024"); err != nil {
			t.Fatal(err)
		}
		if err := flow.PickTime("10:00 AM"); err != nil {
			t.Fatal(err)
		}
		if err := flow.Confirm(context.Background()); err != nil {
			t.Fatal(err)
		}
		sel := flow.Snapshot()
		sel.CreatedAt = time.Time{}
		return sel
	}

	direct := run(false)
	roundTrip := run(true)
	if direct != roundTrip {
		t.Errorf("round trip changed confirmation output:\n%+v\n%+v", direct, roundTrip)
	}
}

func TestConfirmationIsTerminal(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 0)
	if err := flow.ChooseService(svc); err != nil {
		t.Fatal(err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickDate("Mon Jan 01 2024"); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickTime("10:00 AM"); err != nil {
		t.Fatal(err)
	}
	if err := flow.Confirm(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := flow.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition backing out of confirmation, got %v", err)
	}
	if err := flow.PickDate("Tue Jan 02 2024"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition mutating a confirmed flow, got %v", err)
	}
	if err := flow.Confirm(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition re-confirming, got %v", err)
	}
}

func TestCommitInFlightGuard(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 500*time.Millisecond)
	if err := flow.ChooseService(svc); err != nil {
		t.Fatal(err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickDate("Mon Jan 01 2024"); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickTime("10:00 AM"); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- flow.Confirm(context.Background())
	}()

	// Wait until the commit is pending, then verify every transition is
	// refused while it runs.
	deadline := time.Now().Add(2 * time.Second)
	for !flow.Snapshot().CommitPending {
		if time.Now().After(deadline) {
			t.Fatal("commit never became pending")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := flow.Confirm(context.Background()); !errors.Is(err, ErrCommitInFlight) {
		t.Errorf("expected ErrCommitInFlight for second confirm, got %v", err)
	}
	if err := flow.PickTime("11:00 AM"); !errors.Is(err, ErrCommitInFlight) {
		t.Errorf("expected ErrCommitInFlight for pick during commit, got %v", err)
	}
	if err := flow.Back(); !errors.Is(err, ErrCommitInFlight) {
		t.Errorf("expected ErrCommitInFlight for back during commit, got %v", err)
	}

	if err := <-done; err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if sel := flow.Snapshot(); sel.Step != "confirmation" || sel.CommitPending {
		t.Fatalf("expected terminal confirmation after commit, got %+v", sel)
	}
}

func TestConfirmCancelledContext(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 5*time.Second)
	if err := flow.ChooseService(svc); err != nil {
		t.Fatal(err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickDate("Mon Jan 01 2024"); err != nil {
		t.Fatal(err)
	}
	if err := flow.PickTime("10:00 AM"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- flow.Confirm(ctx)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	sel := flow.Snapshot()
	if sel.Step != "datetime" || sel.CommitPending {
		t.Fatalf("cancelled commit must leave the flow in datetime: %+v", sel)
	}
}

func TestEmptySelectionsRejected(t *testing.T) {
	svc, st := testCatalogItems(t)
	flow := newFlow("flow-1", 0)
	if err := flow.ChooseService(svc); err != nil {
		t.Fatal(err)
	}
	if err := flow.ChooseStylist(st); err != nil {
		t.Fatal(err)
	}

	if err := flow.PickDate(""); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection for blank date, got %v", err)
	}
	if err := flow.PickTime(""); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("expected ErrEmptySelection for blank time, got %v", err)
	}
}
