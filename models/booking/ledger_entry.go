package booking

import (
	"time"
)

// Ledger field names recorded in LedgerEntry rows.
const (
	LedgerFieldBookingFee = "booking_fee_status"
	LedgerFieldPayment    = "payment_status"
)

// LedgerEntry is one row of the append-only payment audit trail. Every change
// to a booking's fee or payment status writes exactly one entry, in the same
// transaction as the status change that caused it. Used for reconciliation
// reporting and dispute resolution; never updated or deleted.
type LedgerEntry struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// DO NOT make this unique here (entries are many per booking)
	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"booking"`

	Field      string       `gorm:"type:varchar(50);not null;index" json:"field"`
	FromStatus LedgerStatus `gorm:"type:varchar(20);not null" json:"from_status"`
	ToStatus   LedgerStatus `gorm:"type:varchar(20);not null" json:"to_status"`

	// CausedBy is the booking event whose side effect produced this entry.
	CausedBy string `gorm:"type:varchar(50);not null" json:"caused_by"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "payment_ledger_entries"
}
