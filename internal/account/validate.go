// Package account owns registration, login, session persistence and the
// seller onboarding flow.
package account

import (
	"regexp"
	"strings"
	"unicode"

	"celora/internal/domain"
)

var (
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	mobilePattern = regexp.MustCompile(`^\+[0-9]{1,4}[0-9]{10}$`)
	// tax ID: 5 letters, 4 digits, 1 letter
	taxIDPattern = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	// bank routing code: 4 letters, a literal 0, 6 alphanumerics
	routingPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

const passwordSymbols = `!@#$%^&*()-_=+[]{};:'",.<>/?\|~` + "`"

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return domain.NewValidationError("email", "must be a valid email address")
	}
	return nil
}

// ValidatePassword applies the registration strength rules in order: length,
// uppercase, digit, symbol. The first failing rule is reported.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return domain.NewValidationError("password", "must be at least 8 characters")
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return domain.NewValidationError("password", "must contain an uppercase letter")
	}
	if !hasDigit {
		return domain.NewValidationError("password", "must contain a digit")
	}
	if !hasSymbol {
		return domain.NewValidationError("password", "must contain a symbol")
	}
	return nil
}

// ValidateMobile checks the +<country code><10 digit number> shape.
func ValidateMobile(mobile string) error {
	if !mobilePattern.MatchString(mobile) {
		return domain.NewValidationError("mobile", "must be +<country code> followed by a 10 digit number")
	}
	return nil
}

// ValidateTaxID checks the canonical government tax ID shape.
func ValidateTaxID(taxID string) error {
	if !taxIDPattern.MatchString(taxID) {
		return domain.NewValidationError("tax_id", "must be 5 letters, 4 digits and a letter")
	}
	return nil
}

// ValidateRoutingCode checks the bank routing code shape.
func ValidateRoutingCode(code string) error {
	if !routingPattern.MatchString(code) {
		return domain.NewValidationError("routing_code", "must be 4 letters, a zero and 6 alphanumerics")
	}
	return nil
}

// ValidateDisplayName requires a non-empty name after trimming.
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("display_name", "must not be empty")
	}
	return nil
}
