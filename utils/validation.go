package utils

import (
	"regexp"
	"strings"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// MinPasswordLength is the shortest password accepted at signup
const MinPasswordLength = 6

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateUsername checks if the username meets the requirements
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username is required"
	}
	if !usernameRegex.MatchString(username) {
		return false, "Username must be 3-30 characters of letters, numbers, '.', '-' or '_'"
	}
	return true, ""
}

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format. Please enter a valid email address"
	}
	return true, ""
}

// ValidatePassword checks the password length
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password is required"
	}
	if len(password) < MinPasswordLength {
		return false, "Password must be at least 6 characters long"
	}
	return true, ""
}

// ValidatePrice validates an item price
func ValidatePrice(price float64) (bool, string) {
	if price < 0 {
		return false, "Price cannot be negative"
	}
	return true, ""
}

// Required reports whether s has non-whitespace content
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}
