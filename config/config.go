package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Fee policy modes. The booking fee is platform configuration, not business
// logic: it is resolved once at checkout and stored on the booking.
const (
	FeeModeFixed   = "fixed"
	FeeModePercent = "percent"
)

// FeePolicy determines the upfront booking fee captured on confirmation.
type FeePolicy struct {
	// Mode is "fixed" (Amount minor units per booking) or "percent"
	// (Percent of the booking total).
	Mode    string  `envconfig:"FEE_MODE" default:"fixed"`
	Amount  int64   `envconfig:"FEE_AMOUNT" default:"0"`
	Percent float64 `envconfig:"FEE_PERCENT" default:"0"`
}

// Config holds the application settings read from the environment.
type Config struct {
	AppHost string `envconfig:"APP_HOST" default:"0.0.0.0"`
	AppPort string `envconfig:"APP_PORT" default:"8080"`

	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	Fee FeePolicy
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Fee.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fee policy for nonsense values.
func (p FeePolicy) Validate() error {
	switch p.Mode {
	case FeeModeFixed:
		if p.Amount < 0 {
			return fmt.Errorf("FEE_AMOUNT must not be negative, got %d", p.Amount)
		}
	case FeeModePercent:
		if p.Percent < 0 || p.Percent > 100 {
			return fmt.Errorf("FEE_PERCENT must be within 0-100, got %v", p.Percent)
		}
	default:
		return fmt.Errorf("FEE_MODE must be %q or %q, got %q", FeeModeFixed, FeeModePercent, p.Mode)
	}
	return nil
}

// ResolveFee returns the booking fee for a given total, in minor units.
// Percent mode truncates to the minor unit so the fee never exceeds the total.
func (p FeePolicy) ResolveFee(totalAmount int64) int64 {
	switch p.Mode {
	case FeeModePercent:
		return int64(float64(totalAmount) * p.Percent / 100)
	default:
		if p.Amount > totalAmount {
			return totalAmount
		}
		return p.Amount
	}
}
