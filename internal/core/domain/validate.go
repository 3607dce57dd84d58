package domain

import (
	"regexp"
	"strings"
)

const (
	nameMinLen    = 20
	nameMaxLen    = 60
	addressMaxLen = 400
	passwordMin   = 8
	passwordMax   = 16
	// passwordSpecials is the fixed special-character set a password must
	// draw at least one character from.
	passwordSpecials = "!@#$%^&*"
)

var emailRe = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,}$`)

// ValidateName checks the 20-60 character rule shared by users and stores.
func ValidateName(name string) (ok bool, msg string) {
	if l := len(name); l < nameMinLen || l > nameMaxLen {
		return false, "name must be 20-60 characters"
	}
	return true, ""
}

// ValidateEmail checks that the address is RFC-shaped.
func ValidateEmail(email string) (ok bool, msg string) {
	if !emailRe.MatchString(email) {
		return false, "invalid email format"
	}
	return true, ""
}

// ValidateAddress checks the optional address field.
func ValidateAddress(address string) (ok bool, msg string) {
	if len(address) > addressMaxLen {
		return false, "address must be under 400 characters"
	}
	return true, ""
}

// ValidatePassword enforces the password shape: 8-16 characters with at least
// one uppercase letter and one special character from passwordSpecials.
func ValidatePassword(password string) (ok bool, msg string) {
	l := len(password)
	hasUpper := strings.IndexFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
	hasSpecial := strings.ContainsAny(password, passwordSpecials)
	if l < passwordMin || l > passwordMax || !hasUpper || !hasSpecial {
		return false, "password must be 8-16 characters with at least one uppercase letter and one special character"
	}
	return true, ""
}

// ValidateNewUser runs the full field validation for user creation and
// returns a ValidationError listing every violation, or nil.
func ValidateNewUser(name, email, address, password string) error {
	var violations []string
	if ok, msg := ValidateName(name); !ok {
		violations = append(violations, msg)
	}
	if ok, msg := ValidateEmail(email); !ok {
		violations = append(violations, msg)
	}
	if ok, msg := ValidateAddress(address); !ok {
		violations = append(violations, msg)
	}
	if ok, msg := ValidatePassword(password); !ok {
		violations = append(violations, msg)
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidateNewStore runs the field validation for store creation.
func ValidateNewStore(name, email, address string) error {
	var violations []string
	if ok, msg := ValidateName(name); !ok {
		violations = append(violations, msg)
	}
	if ok, msg := ValidateEmail(email); !ok {
		violations = append(violations, msg)
	}
	if ok, msg := ValidateAddress(address); !ok {
		violations = append(violations, msg)
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidateRating bounds-checks a rating value.
func ValidateRating(value int) error {
	if value < MinRating || value > MaxRating {
		return NewValidationError("rating must be between 1 and 5")
	}
	return nil
}
