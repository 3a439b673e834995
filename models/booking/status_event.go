package booking

import (
	"time"
)

// StatusEvent records one status change of a booking (append-only).
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for booking relationship
	BookingID uint    `gorm:"not null;index" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"booking"`

	FromStatus Status `gorm:"type:varchar(20)" json:"from_status"`
	ToStatus   Status `gorm:"type:varchar(20);not null" json:"to_status"`
	Event      string `gorm:"type:varchar(50);not null;index" json:"event"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "booking_status_events"
}
