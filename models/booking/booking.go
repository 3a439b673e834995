package booking

import (
	"time"

	"homeservice-booking/models/catalog"
	"homeservice-booking/models/user"
)

// Booking represents one booked service line with its pricing snapshot and
// payment ledger state. All money fields are in minor currency units.
//
// The pricing snapshot (UnitPrice, Quantity, CallingCharge, CommissionPercent)
// is frozen at creation time. Later edits to the provider's profile or the
// service price never touch existing bookings.
type Booking struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ReferenceNumber string `gorm:"type:varchar(255);not null;unique" json:"reference_number"`

	// Parties, immutable after creation
	ClientID   uint            `gorm:"not null;index" json:"client_id"`
	Client     user.User       `gorm:"foreignKey:ClientID" json:"client"`
	ProviderID uint            `gorm:"not null;index" json:"provider_id"`
	ServiceID  uint            `gorm:"not null" json:"service_id"`
	Service    catalog.Service `gorm:"foreignKey:ServiceID" json:"service"`

	// Scheduling
	BookingDate time.Time `gorm:"not null" json:"booking_date"`
	BookingTime string    `gorm:"type:varchar(20);not null" json:"booking_time"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	Notes       string    `gorm:"type:text" json:"notes"`

	// Pricing snapshot, captured at creation and never recomputed
	UnitPrice         int64   `gorm:"not null" json:"unit_price"`
	Quantity          int     `gorm:"not null" json:"quantity"`
	CallingCharge     int64   `gorm:"not null;default:0" json:"calling_charge"`
	CommissionPercent float64 `gorm:"not null;default:10" json:"commission_percentage"`

	// Derived money
	TotalAmount     int64 `gorm:"not null" json:"total_amount"`
	BookingFee      int64 `gorm:"not null;default:0" json:"booking_fee"`
	RemainingAmount int64 `gorm:"not null" json:"remaining_amount"`

	// Workflow and ledger state
	Status           Status       `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	BookingFeeStatus LedgerStatus `gorm:"type:varchar(20);not null;default:pending" json:"booking_fee_status"`
	PaymentStatus    LedgerStatus `gorm:"type:varchar(20);not null;default:pending" json:"payment_status"`

	PaymentMethod string `gorm:"type:varchar(50)" json:"payment_method"`

	// Version guards against concurrent transitions on the same booking.
	Version int64 `gorm:"not null;default:0" json:"version"`

	StatusChangedAt time.Time `json:"status_changed_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsMutable returns false once the booking has reached a terminal status.
func (b *Booking) IsMutable() bool {
	return !b.Status.IsTerminal()
}
