// Package ledger exposes the read-only reconciliation view over bookings,
// settlements and the payment audit trail. It has no mutators; every write
// goes through the lifecycle engine.
package ledger

import (
	"time"

	"homeservice-booking/models/booking"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Ledger answers reconciliation queries for external billing collaborators.
type Ledger struct {
	DB *gorm.DB
}

// NewLedger creates a new payment ledger view.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// PendingFeeBookings lists live bookings whose upfront fee has not been
// captured yet.
func (l *Ledger) PendingFeeBookings() ([]booking.Booking, error) {
	var bookings []booking.Booking
	err := l.DB.
		Where("booking_fee > 0").
		Where("booking_fee_status = ?", booking.LedgerPending).
		Where("status NOT IN ?", []booking.Status{booking.StatusCompleted, booking.StatusCancelled}).
		Order("created_at").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// PayableSettlements lists a provider's settlements in the given range. A
// zero from/to defaults to today's day boundaries.
func (l *Ledger) PayableSettlements(providerID uint, from, to time.Time) ([]booking.Settlement, error) {
	if from.IsZero() {
		from = now.BeginningOfDay()
	}
	if to.IsZero() {
		to = now.EndOfDay()
	}

	var settlements []booking.Settlement
	err := l.DB.
		Joins("JOIN bookings ON bookings.id = settlements.booking_id").
		Where("bookings.provider_id = ?", providerID).
		Where("settlements.settled_at BETWEEN ? AND ?", from, to).
		Order("settlements.settled_at").
		Find(&settlements).Error
	if err != nil {
		return nil, err
	}
	return settlements, nil
}

// History returns the append-only ledger trail for one booking, oldest first.
func (l *Ledger) History(bookingID uint) ([]booking.LedgerEntry, error) {
	var entries []booking.LedgerEntry
	err := l.DB.
		Where("booking_id = ?", bookingID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
