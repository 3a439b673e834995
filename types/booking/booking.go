package booking

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CartLine is one {service, quantity} pair handed over by the cart at checkout.
type CartLine struct {
	ServiceID uint `json:"service_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest represents the request payload for checking out a cart.
// One booking is created per line item.
type CheckoutRequest struct {
	BookingDate   string     `json:"booking_date" validate:"required"` // YYYY-MM-DD
	BookingTime   string     `json:"booking_time" validate:"required,max=20"`
	Address       string     `json:"address" validate:"required,min=1"`
	Phone         string     `json:"phone" validate:"required,min=6,max=20"`
	Notes         string     `json:"notes" validate:"omitempty"`
	PaymentMethod string     `json:"payment_method" validate:"required,max=50"`
	Items         []CartLine `json:"items" validate:"required,min=1,dive"`
}

// TransitionRequest represents the request payload for a status transition.
type TransitionRequest struct {
	Event string `json:"event" validate:"required,oneof=confirm start complete cancel"`
}

func (r CheckoutRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid checkout request: %w", err)
	}
	return nil
}

func (r TransitionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid transition request: %w", err)
	}
	return nil
}
