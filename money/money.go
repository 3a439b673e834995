// Package money holds the pure calculation functions for booking totals, fee
// splits and settlements. All amounts are int64 minor currency units; nothing
// here touches the database.
package money

import (
	"errors"
	"math"
)

var (
	// ErrInvalidPricing means a negative amount, a non-positive quantity or a
	// commission percentage outside [0, 100].
	ErrInvalidPricing = errors.New("invalid pricing input")

	// ErrFeeExceedsTotal means the booking fee is larger than the total amount.
	ErrFeeExceedsTotal = errors.New("booking fee exceeds total amount")
)

// ComputeTotal returns unitPrice*quantity + callingCharge.
func ComputeTotal(unitPrice int64, quantity int, callingCharge int64) (int64, error) {
	if unitPrice < 0 || quantity <= 0 || callingCharge < 0 {
		return 0, ErrInvalidPricing
	}
	return unitPrice*int64(quantity) + callingCharge, nil
}

// SplitFee returns the remaining amount after the upfront booking fee.
func SplitFee(totalAmount, bookingFee int64) (int64, error) {
	if totalAmount < 0 || bookingFee < 0 {
		return 0, ErrInvalidPricing
	}
	if bookingFee > totalAmount {
		return 0, ErrFeeExceedsTotal
	}
	return totalAmount - bookingFee, nil
}

// ComputeSettlement splits a completed booking's total into the platform
// commission and the provider payout. The commission is rounded half-to-even
// to the minor unit so that commission + payout == totalAmount exactly.
func ComputeSettlement(totalAmount int64, commissionPercent float64) (commission, payout int64, err error) {
	if totalAmount < 0 || commissionPercent < 0 || commissionPercent > 100 {
		return 0, 0, ErrInvalidPricing
	}

	// The percentage is carried as integer basis points so the division below
	// stays in exact integer arithmetic.
	bps := int64(math.Round(commissionPercent * 100))
	commission = bankersDiv(totalAmount*bps, 10000)
	payout = totalAmount - commission
	return commission, payout, nil
}

// bankersDiv divides num by den rounding half-to-even. num and den must be
// non-negative, den > 0.
func bankersDiv(num, den int64) int64 {
	q := num / den
	r := num % den
	switch {
	case r*2 > den:
		q++
	case r*2 == den && q%2 != 0:
		q++
	}
	return q
}
