package notify

import (
	"fmt"
	"time"

	"homeservice-booking/logger"
)

// Event names consumed by the external notification/reporting collaborators.
const (
	EventBookingCreated       = "BookingCreated"
	EventBookingStatusChanged = "BookingStatusChanged"
	EventSettlementCreated    = "SettlementCreated"
)

// Event is a read-only notification emitted after a committed change.
type Event struct {
	Name       string    `json:"name"`
	BookingID  uint      `json:"booking_id"`
	Reference  string    `json:"reference_number"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	At         time.Time `json:"at"`
}

// Dispatcher fans booking events out to the notification collaborator without
// ever blocking the transition that produced them. Events are best-effort:
// when the buffer is full the event is dropped with a warning.
type Dispatcher struct {
	channel chan Event
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		channel: make(chan Event, 256),
	}
}

// Process drains the event channel. Run in its own goroutine. The current
// consumer logs events; a mailer or analytics exporter plugs in here.
func (d *Dispatcher) Process() {
	for ev := range d.channel {
		logger.Info(fmt.Sprintf("event %s booking=%d ref=%s %s->%s",
			ev.Name, ev.BookingID, ev.Reference, ev.FromStatus, ev.ToStatus))
	}
}

// Publish enqueues an event. Never blocks.
func (d *Dispatcher) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case d.channel <- ev:
	default:
		logger.Warning(fmt.Sprintf("notification buffer full, dropping %s for booking %d", ev.Name, ev.BookingID))
	}
}
