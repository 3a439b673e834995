package catalog

import (
	"time"

	"homeservice-booking/models/user"
)

// Provider holds the pricing terms a provider offers services under. These
// fields are read at checkout time only; existing bookings keep their own
// snapshot and never see later edits.
type Provider struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;unique" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	BusinessName string `gorm:"type:varchar(255);not null" json:"business_name"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`

	// CallingCharge is a flat visit charge in minor currency units.
	CallingCharge int64 `gorm:"not null;default:0" json:"calling_charge"`

	// CommissionPercent is the platform's cut of completed bookings, 0-100.
	CommissionPercent float64 `gorm:"not null;default:10" json:"commission_percentage"`

	IsActive  bool       `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
