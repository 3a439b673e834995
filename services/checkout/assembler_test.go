package checkout_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"homeservice-booking/config"
	"homeservice-booking/models/booking"
	"homeservice-booking/models/catalog"
	"homeservice-booking/money"
	"homeservice-booking/services/checkout"
)

func testService(t *testing.T) *catalog.Service {
	t.Helper()
	return &catalog.Service{
		ID:         30,
		ProviderID: 20,
		Name:       "Deep Home Cleaning",
		Price:      10000,
		IsActive:   true,
		Provider: catalog.Provider{
			ID:                20,
			CallingCharge:     2000,
			CommissionPercent: 10,
			IsActive:          true,
		},
	}
}

func testInput() checkout.Input {
	return checkout.Input{
		ClientID:      10,
		BookingDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		BookingTime:   "10:00",
		Address:       "12 Lake View Road",
		Phone:         "01711111111",
		PaymentMethod: "cash",
	}
}

func TestCheckAvailability(t *testing.T) {
	if err := checkout.CheckAvailability(testService(t)); err != nil {
		t.Fatalf("active service must be bookable: %v", err)
	}

	svc := testService(t)
	svc.IsActive = false
	if err := checkout.CheckAvailability(svc); !errors.Is(err, booking.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable for inactive service, got %v", err)
	}

	svc = testService(t)
	svc.Provider.IsActive = false
	if err := checkout.CheckAvailability(svc); !errors.Is(err, booking.ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable for inactive provider, got %v", err)
	}
}

func TestBuildBookingSnapshotsPricing(t *testing.T) {
	svc := testService(t)
	fee := config.FeePolicy{Mode: config.FeeModeFixed, Amount: 5000}

	b, err := checkout.BuildBooking(svc, testInput(), checkout.Line{ServiceID: svc.ID, Quantity: 2}, fee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.UnitPrice != 10000 || b.Quantity != 2 || b.CallingCharge != 2000 {
		t.Fatalf("pricing snapshot wrong: %+v", b)
	}
	if b.CommissionPercent != 10 {
		t.Fatalf("expected commission snapshot 10, got %v", b.CommissionPercent)
	}
	if b.TotalAmount != 22000 {
		t.Fatalf("expected total 22000, got %d", b.TotalAmount)
	}
	if b.BookingFee != 5000 || b.RemainingAmount != 17000 {
		t.Fatalf("expected fee 5000 / remaining 17000, got %d / %d", b.BookingFee, b.RemainingAmount)
	}
	if b.BookingFee+b.RemainingAmount != b.TotalAmount {
		t.Fatal("fee + remaining must equal total")
	}
	if b.Status != booking.StatusPending {
		t.Fatalf("expected pending, got %s", b.Status)
	}
	if b.BookingFeeStatus != booking.LedgerPending || b.PaymentStatus != booking.LedgerPending {
		t.Fatal("new bookings must start with a pending ledger")
	}
	if !strings.HasPrefix(b.ReferenceNumber, "HSB-") {
		t.Fatalf("unexpected reference number %q", b.ReferenceNumber)
	}
	if b.ClientID != 10 || b.ProviderID != 20 || b.ServiceID != 30 {
		t.Fatalf("parties wrong: %+v", b)
	}
}

func TestBuildBookingPercentFeePolicy(t *testing.T) {
	svc := testService(t)
	fee := config.FeePolicy{Mode: config.FeeModePercent, Percent: 25}

	b, err := checkout.BuildBooking(svc, testInput(), checkout.Line{ServiceID: svc.ID, Quantity: 2}, fee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BookingFee != 5500 {
		t.Fatalf("expected 25%% fee 5500, got %d", b.BookingFee)
	}
	if b.BookingFee+b.RemainingAmount != b.TotalAmount {
		t.Fatal("fee + remaining must equal total")
	}
}

func TestBuildBookingFixedFeeNeverExceedsTotal(t *testing.T) {
	svc := testService(t)
	svc.Price = 100
	svc.Provider.CallingCharge = 0
	fee := config.FeePolicy{Mode: config.FeeModeFixed, Amount: 5000}

	b, err := checkout.BuildBooking(svc, testInput(), checkout.Line{ServiceID: svc.ID, Quantity: 1}, fee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.BookingFee != b.TotalAmount {
		t.Fatalf("fee must cap at the total, got fee %d total %d", b.BookingFee, b.TotalAmount)
	}
	if b.RemainingAmount != 0 {
		t.Fatalf("expected remaining 0, got %d", b.RemainingAmount)
	}
}

func TestBuildBookingRejectsBadPricing(t *testing.T) {
	svc := testService(t)
	svc.Price = -1

	_, err := checkout.BuildBooking(svc, testInput(), checkout.Line{ServiceID: svc.ID, Quantity: 1}, config.FeePolicy{Mode: config.FeeModeFixed})
	if !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing, got %v", err)
	}

	svc = testService(t)
	_, err = checkout.BuildBooking(svc, testInput(), checkout.Line{ServiceID: svc.ID, Quantity: 0}, config.FeePolicy{Mode: config.FeeModeFixed})
	if !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing for zero quantity, got %v", err)
	}
}

func TestBuildBookingRejectsBadCommissionSnapshot(t *testing.T) {
	svc := testService(t)
	svc.Provider.CommissionPercent = 120

	_, err := checkout.BuildBooking(svc, testInput(), checkout.Line{ServiceID: svc.ID, Quantity: 1}, config.FeePolicy{Mode: config.FeeModeFixed})
	if !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing, got %v", err)
	}
}
