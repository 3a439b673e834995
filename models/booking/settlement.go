package booking

import (
	"time"
)

// Settlement is the immutable money split written when a booking completes.
// PlatformCommission + ProviderPayout always equals the booking's TotalAmount.
type Settlement struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// One settlement per booking, created on the completed transition only.
	BookingID uint    `gorm:"not null;unique" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"booking"`

	PlatformCommission int64 `gorm:"not null" json:"platform_commission"`
	ProviderPayout     int64 `gorm:"not null" json:"provider_payout"`

	SettledAt time.Time `gorm:"not null" json:"settled_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Settlement model
func (Settlement) TableName() string {
	return "settlements"
}
