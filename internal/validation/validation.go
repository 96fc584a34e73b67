package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// EmailPattern упрощённая проверка email, полную проверку делает сервер
	EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// VoucherPattern допускает латиницу в верхнем регистре и цифры
	VoucherPattern = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)
)

const (
	MinPasswordLen = 8
	MaxQuantity    = 999
	MaxMessageLen  = 2000
	MaxReasonLen   = 500
)

// ValidateEmail checks that email looks like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email %q is not a valid address", email)
	}
	return nil
}

// ValidatePassword checks the minimal password length.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// NormalizeVoucherCode trims and upper-cases a code typed by a shopper.
func NormalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateVoucherCode checks an already normalized voucher code.
func ValidateVoucherCode(code string) error {
	if code == "" {
		return fmt.Errorf("voucher code cannot be empty")
	}
	if !VoucherPattern.MatchString(code) {
		return fmt.Errorf("voucher code can only contain 4-20 letters (A-Z) and digits (0-9)")
	}
	return nil
}

// ValidateQuantity checks a requested cart quantity.
func ValidateQuantity(n int) error {
	if n < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if n > MaxQuantity {
		return fmt.Errorf("quantity must not exceed %d", MaxQuantity)
	}
	return nil
}

// ValidateText checks a required free-text field against a rune limit.
func ValidateText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", field, maxLen)
	}
	return nil
}
