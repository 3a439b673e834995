// Package checkout turns a cart into bookings. One booking is created per
// cart line item; a checkout either creates all of its bookings or none.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"homeservice-booking/config"
	"homeservice-booking/logger"
	"homeservice-booking/models/booking"
	"homeservice-booking/models/catalog"
	"homeservice-booking/money"
	"homeservice-booking/services/notify"
	"homeservice-booking/utils"

	"gorm.io/gorm"
)

// Line is one {service, quantity} pair from the cart.
type Line struct {
	ServiceID uint
	Quantity  int
}

// Input carries everything the assembler needs for one checkout.
type Input struct {
	ClientID      uint
	BookingDate   time.Time
	BookingTime   string
	Address       string
	Phone         string
	Notes         string
	PaymentMethod string
	Items         []Line
}

// Assembler creates bookings from checkouts.
type Assembler struct {
	DB     *gorm.DB
	Fee    config.FeePolicy
	Events *notify.Dispatcher
}

// NewAssembler creates a new checkout assembler.
func NewAssembler(db *gorm.DB, fee config.FeePolicy, events *notify.Dispatcher) *Assembler {
	return &Assembler{
		DB:     db,
		Fee:    fee,
		Events: events,
	}
}

// Checkout creates one pending booking per line item inside a single
// transaction. Any inactive or missing service fails the whole checkout with
// ErrServiceUnavailable; no rows are written. Clearing the cart afterwards is
// the caller's job.
func (a *Assembler) Checkout(in Input) ([]booking.Booking, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: checkout has no items", money.ErrInvalidPricing)
	}

	var bookings []booking.Booking

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		for _, line := range in.Items {
			var svc catalog.Service
			if err := tx.Preload("Provider").First(&svc, line.ServiceID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: service %d", booking.ErrServiceUnavailable, line.ServiceID)
				}
				return err
			}
			if err := CheckAvailability(&svc); err != nil {
				return err
			}

			b, err := BuildBooking(&svc, in, line, a.Fee)
			if err != nil {
				return err
			}

			if err := tx.Create(b).Error; err != nil {
				logger.Error("Failed to create booking", err)
				return err
			}

			statusEvent := booking.StatusEvent{
				BookingID: b.ID,
				ToStatus:  booking.StatusPending,
				Event:     "create",
				CreatedBy: fmt.Sprintf("%d", in.ClientID),
			}
			if err := tx.Create(&statusEvent).Error; err != nil {
				return err
			}

			bookings = append(bookings, *b)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", bookings[i].ID))
		a.Events.Publish(notify.Event{
			Name:      notify.EventBookingCreated,
			BookingID: bookings[i].ID,
			Reference: bookings[i].ReferenceNumber,
			ToStatus:  booking.StatusPending.String(),
		})
	}

	return bookings, nil
}

// CheckAvailability reports whether a service can be booked right now. Both
// the service and its provider must be active. Pure; persists nothing.
func CheckAvailability(svc *catalog.Service) error {
	if !svc.IsActive {
		return fmt.Errorf("%w: service %d is inactive", booking.ErrServiceUnavailable, svc.ID)
	}
	if !svc.Provider.IsActive {
		return fmt.Errorf("%w: provider %d is inactive", booking.ErrServiceUnavailable, svc.ProviderID)
	}
	return nil
}

// BuildBooking snapshots the service and provider pricing terms into a new
// pending booking and fills the derived money fields. Pure; persists nothing.
func BuildBooking(svc *catalog.Service, in Input, line Line, fee config.FeePolicy) (*booking.Booking, error) {
	total, err := money.ComputeTotal(svc.Price, line.Quantity, svc.Provider.CallingCharge)
	if err != nil {
		return nil, fmt.Errorf("service %d: %w", svc.ID, err)
	}

	bookingFee := fee.ResolveFee(total)
	remaining, err := money.SplitFee(total, bookingFee)
	if err != nil {
		return nil, fmt.Errorf("service %d: %w", svc.ID, err)
	}

	commission := svc.Provider.CommissionPercent
	if commission < 0 || commission > 100 {
		return nil, fmt.Errorf("%w: commission %v", money.ErrInvalidPricing, commission)
	}

	now := time.Now()
	return &booking.Booking{
		ReferenceNumber: utils.GenerateReferenceNumber(),
		ClientID:        in.ClientID,
		ProviderID:      svc.ProviderID,
		ServiceID:       svc.ID,

		BookingDate: in.BookingDate,
		BookingTime: in.BookingTime,
		Address:     in.Address,
		Phone:       in.Phone,
		Notes:       in.Notes,

		UnitPrice:         svc.Price,
		Quantity:          line.Quantity,
		CallingCharge:     svc.Provider.CallingCharge,
		CommissionPercent: commission,

		TotalAmount:     total,
		BookingFee:      bookingFee,
		RemainingAmount: remaining,

		Status:           booking.StatusPending,
		BookingFeeStatus: booking.LedgerPending,
		PaymentStatus:    booking.LedgerPending,
		PaymentMethod:    in.PaymentMethod,

		StatusChangedAt: now,
	}, nil
}
