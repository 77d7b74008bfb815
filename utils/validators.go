// File: /utils/validators.go
package utils

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// PasswordSymbols is the set of symbols a password must draw from.
const PasswordSymbols = "$@#%!*"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidatePassword checks the registration password policy. Rules are checked
// in a fixed order and the first failure wins, so callers can surface a
// single, specific reason.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	if !containsFunc(password, unicode.IsDigit) {
		return errors.New("Password should have at least one numeral")
	}
	if !containsFunc(password, unicode.IsUpper) {
		return errors.New("Password should have at least one uppercase letter")
	}
	if !containsFunc(password, unicode.IsLower) {
		return errors.New("Password should have at least one lowercase letter")
	}
	if !strings.ContainsAny(password, PasswordSymbols) {
		return errors.New("Password should have at least one of the symbols " + PasswordSymbols)
	}
	return nil
}

// ValidateUsername enforces the username rules: minimum length, alphanumeric,
// no embedded whitespace.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return errors.New("Username must be at least 3 characters long")
	}
	if !isAlphanumeric(username) || strings.ContainsAny(username, " \t") {
		return errors.New("Username must be alphanumeric and not contain spaces")
	}
	return nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidURL requires an absolute http(s) URL with a host.
func IsValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
