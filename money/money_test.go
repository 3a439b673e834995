package money_test

import (
	"errors"
	"testing"

	"homeservice-booking/money"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name          string
		unitPrice     int64
		quantity      int
		callingCharge int64
		want          int64
		wantErr       error
	}{
		{name: "single unit no charge", unitPrice: 10000, quantity: 1, callingCharge: 0, want: 10000},
		{name: "two units with calling charge", unitPrice: 10000, quantity: 2, callingCharge: 2000, want: 22000},
		{name: "negative unit price", unitPrice: -1, quantity: 1, callingCharge: 0, wantErr: money.ErrInvalidPricing},
		{name: "zero quantity", unitPrice: 10000, quantity: 0, callingCharge: 0, wantErr: money.ErrInvalidPricing},
		{name: "negative calling charge", unitPrice: 10000, quantity: 1, callingCharge: -5, wantErr: money.ErrInvalidPricing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ComputeTotal(tt.unitPrice, tt.quantity, tt.callingCharge)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected total %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSplitFee(t *testing.T) {
	remaining, err := money.SplitFee(22000, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 17000 {
		t.Fatalf("expected remaining 17000, got %d", remaining)
	}

	if _, err := money.SplitFee(1000, 1001); !errors.Is(err, money.ErrFeeExceedsTotal) {
		t.Fatalf("expected ErrFeeExceedsTotal, got %v", err)
	}
	if _, err := money.SplitFee(1000, -1); !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing, got %v", err)
	}

	// Fee equal to total is allowed; remaining is zero.
	remaining, err = money.SplitFee(1000, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", remaining)
	}
}

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		percent        float64
		wantCommission int64
		wantPayout     int64
	}{
		{name: "exact ten percent", total: 22000, percent: 10, wantCommission: 2200, wantPayout: 19800},
		{name: "zero commission", total: 22000, percent: 0, wantCommission: 0, wantPayout: 22000},
		{name: "full commission", total: 22000, percent: 100, wantCommission: 22000, wantPayout: 0},
		{name: "fractional percent", total: 10000, percent: 12.5, wantCommission: 1250, wantPayout: 8750},
		// Half-to-even: 125 * 10% = 12.5 rounds down to the even 12.
		{name: "half rounds to even down", total: 125, percent: 10, wantCommission: 12, wantPayout: 113},
		// 175 * 10% = 17.5 rounds up to the even 18.
		{name: "half rounds to even up", total: 175, percent: 10, wantCommission: 18, wantPayout: 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commission, payout, err := money.ComputeSettlement(tt.total, tt.percent)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if commission != tt.wantCommission {
				t.Fatalf("expected commission %d, got %d", tt.wantCommission, commission)
			}
			if payout != tt.wantPayout {
				t.Fatalf("expected payout %d, got %d", tt.wantPayout, payout)
			}
			if commission+payout != tt.total {
				t.Fatalf("commission %d + payout %d != total %d", commission, payout, tt.total)
			}
		})
	}
}

func TestComputeSettlementRejectsBadInput(t *testing.T) {
	if _, _, err := money.ComputeSettlement(-1, 10); !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing for negative total, got %v", err)
	}
	if _, _, err := money.ComputeSettlement(1000, -0.1); !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing for negative percent, got %v", err)
	}
	if _, _, err := money.ComputeSettlement(1000, 100.1); !errors.Is(err, money.ErrInvalidPricing) {
		t.Fatalf("expected ErrInvalidPricing for percent over 100, got %v", err)
	}
}

func TestSettlementSumInvariantAcrossTotals(t *testing.T) {
	// The sum invariant must hold exactly for awkward totals, not just round ones.
	percents := []float64{0, 2.5, 7.77, 10, 33.3, 50, 99.99, 100}
	for total := int64(0); total < 1000; total += 37 {
		for _, pct := range percents {
			commission, payout, err := money.ComputeSettlement(total, pct)
			if err != nil {
				t.Fatalf("unexpected error at total=%d pct=%v: %v", total, pct, err)
			}
			if commission < 0 || payout < 0 {
				t.Fatalf("negative split at total=%d pct=%v: %d/%d", total, pct, commission, payout)
			}
			if commission+payout != total {
				t.Fatalf("sum invariant broken at total=%d pct=%v: %d+%d", total, pct, commission, payout)
			}
		}
	}
}
