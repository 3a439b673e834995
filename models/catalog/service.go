package catalog

import (
	"time"
)

// Service is a bookable home service offered by a provider.
type Service struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for provider relationship
	ProviderID uint     `gorm:"not null;index" json:"provider_id"`
	Provider   Provider `gorm:"foreignKey:ProviderID" json:"provider"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	// Price per unit in minor currency units.
	Price int64 `gorm:"not null" json:"price"`

	// Inactive services cannot be checked out; existing bookings are unaffected.
	IsActive bool `gorm:"default:true;index" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
