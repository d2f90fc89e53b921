package utils

import (
	"reflect"
	"regexp"
	"strings"
	"therapyconnect-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate         *validator.Validate
	simpleEmailRegex = regexp.MustCompile(constvars.RegexSimpleEmail)
	walletRegex      = regexp.MustCompile(constvars.RegexWalletAddress)
)

// slotGrid is satisfied by models.AvailabilityGrid.
type slotGrid interface {
	HasAnySlot() bool
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("simple_email", validateSimpleEmail)
	validate.RegisterValidation("positive_number", validatePositiveNumber)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
	validate.RegisterValidation("session_duration", validateSessionDuration)
	validate.RegisterValidation("at_least_one_slot", validateAtLeastOneSlot)
	validate.RegisterValidation("wallet_address", validateWalletAddress)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func IsValidSimpleEmail(email string) bool {
	return simpleEmailRegex.MatchString(email)
}

func IsValidWalletAddress(address string) bool {
	return walletRegex.MatchString(address)
}

func validateSimpleEmail(fl validator.FieldLevel) bool {
	return IsValidSimpleEmail(fl.Field().String())
}

func validateWalletAddress(fl validator.FieldLevel) bool {
	return IsValidWalletAddress(fl.Field().String())
}

const (
	minAmountExponent = -18
	maxAmountExponent = 9
)

// ParsePositiveAmount parses a money amount and rounds it to cents. Amounts
// that round to zero or below are rejected, and so are exponents outside
// [minAmountExponent, maxAmountExponent].
func ParsePositiveAmount(raw string) (decimal.Decimal, bool) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, false
	}
	if value.Exponent() < minAmountExponent || value.Exponent() > maxAmountExponent {
		return decimal.Zero, false
	}
	value = value.Round(constvars.PriceDecimalPlaces)
	return value, value.IsPositive()
}

func validatePositiveNumber(fl validator.FieldLevel) bool {
	_, ok := ParsePositiveAmount(fl.Field().String())
	return ok
}

// validateNotPastDate accepts YYYY-MM-DD dates from today onwards.
func validateNotPastDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation(constvars.DateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !date.Before(today)
}

func validateSessionDuration(fl validator.FieldLevel) bool {
	return IsAllowedSessionDuration(int(fl.Field().Int()))
}

func validateAtLeastOneSlot(fl validator.FieldLevel) bool {
	grid, ok := fl.Field().Interface().(slotGrid)
	return ok && grid.HasAnySlot()
}
