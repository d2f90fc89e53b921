package utils

import (
	"therapyconnect-service/internal/pkg/constvars"

	"github.com/shopspring/decimal"
)

// CalculateSessionPrice returns hourlyRate * minutes / 60 without rounding.
func CalculateSessionPrice(hourlyRate float64, durationMinutes int) decimal.Decimal {
	return decimal.NewFromFloat(hourlyRate).
		Mul(decimal.NewFromInt(int64(durationMinutes))).
		Div(decimal.NewFromInt(constvars.MinutesPerHour))
}

// FormatPrice renders a price with two decimals, e.g. "225.00".
func FormatPrice(price decimal.Decimal) string {
	return price.StringFixed(constvars.PriceDecimalPlaces)
}

func RoundPrice(price decimal.Decimal) float64 {
	return price.Round(constvars.PriceDecimalPlaces).InexactFloat64()
}

func IsAllowedSessionDuration(minutes int) bool {
	for _, allowed := range constvars.AllowedSessionDurations {
		if allowed == minutes {
			return true
		}
	}
	return false
}
