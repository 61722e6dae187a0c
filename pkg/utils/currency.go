package utils

// Zero-decimal currencies on the upstream platform: amounts arrive already in
// whole units instead of cents.
var zeroDecimalCurrencies = map[string]struct{}{
	"CLP": {},
	"HUF": {},
	"ISK": {},
	"JPY": {},
	"KRW": {},
	"PYG": {},
	"TWD": {},
	"VND": {},
}

// CurrencyOffset returns the divisor that converts an amount in the
// platform's minor units to major currency units.
func CurrencyOffset(currency string) float64 {
	if _, ok := zeroDecimalCurrencies[currency]; ok {
		return 1
	}
	return 100
}

// FromMinorUnits converts a minor-unit amount to major units for storage.
func FromMinorUnits(amount float64, currency string) float64 {
	return amount / CurrencyOffset(currency)
}
