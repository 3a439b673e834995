package booking

import "fmt"

// Status represents the workflow state of a booking.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Event is a requested status change on a booking.
type Event string

const (
	EventConfirm  Event = "confirm"
	EventStart    Event = "start"
	EventComplete Event = "complete"
	EventCancel   Event = "cancel"
)

// LedgerStatus tracks the money side of a booking. The upfront fee and the
// full payment each move pending -> paid -> refunded, and only as a side
// effect of a status transition.
type LedgerStatus string

const (
	LedgerPending  LedgerStatus = "pending"
	LedgerPaid     LedgerStatus = "paid"
	LedgerRefunded LedgerStatus = "refunded"
)

// validTransitions defines the state machine for booking status transitions.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// eventTargets maps each event to the status it drives the booking into.
var eventTargets = map[Event]Status{
	EventConfirm:  StatusConfirmed,
	EventStart:    StatusInProgress,
	EventComplete: StatusCompleted,
	EventCancel:   StatusCancelled,
}

func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s Status) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (e Event) String() string {
	return string(e)
}

// Target returns the status this event drives a booking into.
func (e Event) Target() (Status, bool) {
	target, ok := eventTargets[e]
	return target, ok
}

// ParseEvent converts a string to an Event, returning an error if invalid.
func ParseEvent(s string) (Event, error) {
	e := Event(s)
	if _, ok := eventTargets[e]; !ok {
		return "", fmt.Errorf("invalid booking event: %s", s)
	}
	return e, nil
}

func (ls LedgerStatus) String() string {
	return string(ls)
}

// IsValid returns true if the ledger status is recognized.
func (ls LedgerStatus) IsValid() bool {
	switch ls {
	case LedgerPending, LedgerPaid, LedgerRefunded:
		return true
	default:
		return false
	}
}
