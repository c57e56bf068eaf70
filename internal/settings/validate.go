package settings

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// A-share and index codes: 6 digits.
	aShareCodePattern = regexp.MustCompile(`^\d{6}$`)
	// Hong Kong: hk followed by 5 digits.
	hkCodePattern = regexp.MustCompile(`^hk\d{5}$`)
	// US tickers: 1 to 5 letters.
	usCodePattern = regexp.MustCompile(`^[a-z]{1,5}$`)

	scheduleTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

// InvalidStockCodesError names the rejected codes of a watchlist submission.
type InvalidStockCodesError struct {
	Codes []string
}

func (e *InvalidStockCodesError) Error() string {
	return fmt.Sprintf("invalid stock codes: %s", strings.Join(e.Codes, ", "))
}

// ValidateStockCode reports whether code is a well-formed A-share, index,
// Hong Kong or US stock code. Matching is case-insensitive.
func ValidateStockCode(code string) bool {
	code = strings.ToLower(strings.TrimSpace(code))

	return aShareCodePattern.MatchString(code) ||
		hkCodePattern.MatchString(code) ||
		usCodePattern.MatchString(code)
}

// NormalizeStockList splits a comma or newline separated code list and
// lowercases each entry. It returns the valid codes in submission order
// and the rejected ones.
func NormalizeStockList(codes string) (valid, invalid []string) {
	for _, code := range splitList(codes) {
		code = strings.ToLower(code)
		if ValidateStockCode(code) {
			valid = append(valid, code)
		} else {
			invalid = append(invalid, code)
		}
	}

	return valid, invalid
}

// ValidateScheduleTimes reports whether value is a comma separated list
// of HH:MM entries with at least one entry.
func ValidateScheduleTimes(value string) bool {
	entries := splitList(value)
	if len(entries) == 0 {
		return false
	}

	for _, entry := range entries {
		if !scheduleTimePattern.MatchString(entry) {
			return false
		}
	}

	return true
}

func validateStockCodesField(fl validator.FieldLevel) bool {
	_, invalid := NormalizeStockList(fl.Field().String())
	return len(invalid) == 0
}

func validateScheduleTimesField(fl validator.FieldLevel) bool {
	return ValidateScheduleTimes(fl.Field().String())
}
