// Package lifecycle owns the booking state machine. Every status change and
// its ledger side effects go through here; nothing else mutates a booking
// after creation.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"homeservice-booking/logger"
	"homeservice-booking/models/booking"
	"homeservice-booking/money"
	"homeservice-booking/services/notify"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Outcome describes what a transition did to the aggregate and which rows
// must be persisted alongside the status change.
type Outcome struct {
	// NoOp is set when the booking is already in the event's target status.
	// Nothing is persisted and no side effects re-run.
	NoOp bool

	From booking.Status
	To   booking.Status

	LedgerEntries []booking.LedgerEntry
	Settlement    *booking.Settlement
}

// Apply runs the state machine on the in-memory aggregate. It mutates b and
// returns the side effects to persist; it performs no I/O. The transition
// table:
//
//	pending    -> confirmed   (confirm; captures the booking fee)
//	confirmed  -> in_progress (start)
//	in_progress-> completed   (complete; captures payment, writes settlement)
//	pending/confirmed/in_progress -> cancelled (cancel; refunds a paid fee)
//
// Re-applying an event whose target the booking already holds is a success
// no-op, which is what keeps UI retries from double-capturing or
// double-refunding the fee.
func Apply(b *booking.Booking, event booking.Event, at time.Time) (*Outcome, error) {
	target, ok := event.Target()
	if !ok {
		return nil, fmt.Errorf("%w: unknown event %q", booking.ErrInvalidTransition, event)
	}

	if b.Status == target {
		return &Outcome{NoOp: true, From: b.Status, To: b.Status}, nil
	}

	if !b.IsMutable() {
		return nil, fmt.Errorf("%w: booking %d is %s", booking.ErrTerminalState, b.ID, b.Status)
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", booking.ErrInvalidTransition, b.Status, target)
	}

	outcome := &Outcome{From: b.Status, To: target}
	b.Status = target
	b.StatusChangedAt = at

	switch event {
	case booking.EventConfirm:
		if b.BookingFee > 0 && b.BookingFeeStatus == booking.LedgerPending {
			outcome.LedgerEntries = append(outcome.LedgerEntries, ledgerEntry(b,
				booking.LedgerFieldBookingFee, b.BookingFeeStatus, booking.LedgerPaid, event))
			b.BookingFeeStatus = booking.LedgerPaid
		}

	case booking.EventComplete:
		if b.PaymentStatus == booking.LedgerPending {
			outcome.LedgerEntries = append(outcome.LedgerEntries, ledgerEntry(b,
				booking.LedgerFieldPayment, b.PaymentStatus, booking.LedgerPaid, event))
			b.PaymentStatus = booking.LedgerPaid
		}

		commission, payout, err := money.ComputeSettlement(b.TotalAmount, b.CommissionPercent)
		if err != nil {
			// A completed booking without a valid settlement must never exist,
			// so this aborts the whole transition.
			return nil, fmt.Errorf("settlement computation failed for booking %d: %w", b.ID, err)
		}
		outcome.Settlement = &booking.Settlement{
			BookingID:          b.ID,
			PlatformCommission: commission,
			ProviderPayout:     payout,
			SettledAt:          at,
		}

	case booking.EventCancel:
		if b.BookingFeeStatus == booking.LedgerPaid {
			outcome.LedgerEntries = append(outcome.LedgerEntries, ledgerEntry(b,
				booking.LedgerFieldBookingFee, b.BookingFeeStatus, booking.LedgerRefunded, event))
			b.BookingFeeStatus = booking.LedgerRefunded
		}
	}

	return outcome, nil
}

func ledgerEntry(b *booking.Booking, field string, from, to booking.LedgerStatus, event booking.Event) booking.LedgerEntry {
	return booking.LedgerEntry{
		BookingID:  b.ID,
		Field:      field,
		FromStatus: from,
		ToStatus:   to,
		CausedBy:   event.String(),
	}
}

// Engine applies transitions against the database.
type Engine struct {
	DB     *gorm.DB
	Events *notify.Dispatcher
}

// NewEngine creates a new lifecycle engine.
func NewEngine(db *gorm.DB, events *notify.Dispatcher) *Engine {
	return &Engine{
		DB:     db,
		Events: events,
	}
}

// Transition applies one event to the booking identified by bookingID. The
// status change, its ledger entries, the status-event row and (on completion)
// the settlement commit as a single transaction. The row is locked for the
// duration and the update is version-guarded, so two concurrent transitions
// on the same booking serialize; the loser gets ErrConcurrencyConflict or a
// clean ErrInvalidTransition against the winner's post-state.
func (e *Engine) Transition(bookingID uint, event booking.Event, actor string) (*booking.Booking, error) {
	var b booking.Booking
	var outcome *Outcome

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return booking.ErrNotFound
			}
			return err
		}

		var err error
		outcome, err = Apply(&b, event, time.Now())
		if err != nil {
			return err
		}
		if outcome.NoOp {
			return nil
		}

		res := tx.Model(&booking.Booking{}).
			Where("id = ? AND version = ?", b.ID, b.Version).
			Updates(map[string]interface{}{
				"status":             b.Status,
				"booking_fee_status": b.BookingFeeStatus,
				"payment_status":     b.PaymentStatus,
				"status_changed_at":  b.StatusChangedAt,
				"version":            b.Version + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return booking.ErrConcurrencyConflict
		}
		b.Version++

		statusEvent := booking.StatusEvent{
			BookingID:  b.ID,
			FromStatus: outcome.From,
			ToStatus:   outcome.To,
			Event:      event.String(),
			CreatedBy:  actor,
		}
		if err := tx.Create(&statusEvent).Error; err != nil {
			return err
		}

		for i := range outcome.LedgerEntries {
			outcome.LedgerEntries[i].CreatedBy = actor
			if err := tx.Create(&outcome.LedgerEntries[i]).Error; err != nil {
				return err
			}
		}

		if outcome.Settlement != nil {
			if err := tx.Create(outcome.Settlement).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !outcome.NoOp {
		logger.Success(fmt.Sprintf("Booking %d transitioned %s -> %s", b.ID, outcome.From, outcome.To))
		e.Events.Publish(notify.Event{
			Name:       notify.EventBookingStatusChanged,
			BookingID:  b.ID,
			Reference:  b.ReferenceNumber,
			FromStatus: outcome.From.String(),
			ToStatus:   outcome.To.String(),
		})
		if outcome.Settlement != nil {
			e.Events.Publish(notify.Event{
				Name:      notify.EventSettlementCreated,
				BookingID: b.ID,
				Reference: b.ReferenceNumber,
			})
		}
	}

	return &b, nil
}
