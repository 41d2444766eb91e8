// Package pricing converts and formats catalog prices for display. The
// display currency is explicit configuration; it is never inferred from the
// runtime environment inside pricing logic.
package pricing

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reference currency of stored prices and the supported display override.
const (
	ReferenceCurrency = "INR"
	DefaultCurrency   = "USD"
)

// referenceToUSD is the fixed display-only conversion rate. Real rates belong
// to a billing service, which is out of scope.
const referenceToUSD = 0.012

// ForCountry resolves the display currency for a visitor country, falling
// back to the configured default when the country carries no override.
func ForCountry(defaultCurrency, countryCode string) string {
	if strings.EqualFold(countryCode, "IN") {
		return ReferenceCurrency
	}
	if defaultCurrency == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(defaultCurrency)
}

// Convert maps a stored reference-currency amount into the display currency.
// Amounts stay whole units; this is presentation, not accounting.
func Convert(amount int, displayCurrency string) int {
	if strings.EqualFold(displayCurrency, ReferenceCurrency) {
		return amount
	}
	return int(float64(amount)*referenceToUSD + 0.5)
}

// Format renders a stored amount in the display currency with its symbol.
func Format(amount int, displayCurrency string) string {
	unit, err := currency.ParseISO(displayCurrency)
	if err != nil {
		unit = currency.USD
	}
	tag := language.English
	if unit == currency.INR {
		tag = language.MustParse("en-IN")
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(Convert(amount, unit.String()))))
}
