package booking_test

import (
	"testing"

	"homeservice-booking/models/booking"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusInProgress, false},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusConfirmed, booking.StatusInProgress, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusCompleted, false},
		{booking.StatusInProgress, booking.StatusCompleted, true},
		{booking.StatusInProgress, booking.StatusCancelled, true},
		{booking.StatusInProgress, booking.StatusConfirmed, false},
		{booking.StatusCompleted, booking.StatusCancelled, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: expected allowed=%v, got %v", tt.from, tt.to, tt.allowed, got)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	terminal := []booking.Status{booking.StatusCompleted, booking.StatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	live := []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusInProgress}
	for _, s := range live {
		if s.IsTerminal() {
			t.Errorf("expected %s not to be terminal", s)
		}
	}

	if booking.Status("bogus").IsValid() {
		t.Error("expected bogus status to be invalid")
	}
	if !booking.Status("bogus").IsTerminal() {
		t.Error("unknown statuses must be treated as terminal")
	}
}

func TestBookingMutability(t *testing.T) {
	tests := []struct {
		status  booking.Status
		mutable bool
	}{
		{booking.StatusPending, true},
		{booking.StatusConfirmed, true},
		{booking.StatusInProgress, true},
		{booking.StatusCompleted, false},
		{booking.StatusCancelled, false},
	}

	for _, tt := range tests {
		b := booking.Booking{Status: tt.status}
		if got := b.IsMutable(); got != tt.mutable {
			t.Errorf("%s: expected mutable=%v, got %v", tt.status, tt.mutable, got)
		}
	}
}

func TestEventTargets(t *testing.T) {
	tests := []struct {
		event  booking.Event
		target booking.Status
	}{
		{booking.EventConfirm, booking.StatusConfirmed},
		{booking.EventStart, booking.StatusInProgress},
		{booking.EventComplete, booking.StatusCompleted},
		{booking.EventCancel, booking.StatusCancelled},
	}

	for _, tt := range tests {
		target, ok := tt.event.Target()
		if !ok {
			t.Fatalf("expected target for event %s", tt.event)
		}
		if target != tt.target {
			t.Errorf("event %s: expected target %s, got %s", tt.event, tt.target, target)
		}
	}

	if _, ok := booking.Event("explode").Target(); ok {
		t.Error("unknown event must have no target")
	}
}

func TestParseEvent(t *testing.T) {
	if _, err := booking.ParseEvent("confirm"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := booking.ParseEvent("approve"); err == nil {
		t.Fatal("expected error for unknown event")
	}
}
