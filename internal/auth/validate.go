package auth

import (
	"regexp"
	"strings"

	"merrymeal/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Registration holds the fields collected by the registration form.
type Registration struct {
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirm_password"`
	PhoneNumber     string         `json:"phone_number"`
	Address         models.Address `json:"address"`
}

// ValidEmail reports whether the address has a plausible mailbox@domain
// shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.ToLower(email))
}

// StrongPassword reports whether the password is at least 8 characters
// and carries an uppercase letter, a digit, and a special character.
func StrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*", r):
			special = true
		}
	}
	return upper && digit && special
}

// ValidateLogin reports per-field problems with a login submission.
func ValidateLogin(email, password string) map[string]string {
	fields := make(map[string]string)
	if !ValidEmail(email) {
		fields["email"] = "Invalid email address"
	}
	if password == "" {
		fields["password"] = "Password is required"
	}
	return fields
}

// ValidateRegistration reports per-field problems with a registration
// submission.
func ValidateRegistration(reg Registration) map[string]string {
	fields := make(map[string]string)
	if reg.FirstName == "" {
		fields["first_name"] = "First name is required"
	}
	if reg.LastName == "" {
		fields["last_name"] = "Last name is required"
	}
	if !ValidEmail(reg.Email) {
		fields["email"] = "Invalid email address"
	}
	if !StrongPassword(reg.Password) {
		fields["password"] = "Password must be 8+ chars, include uppercase, number, and special char"
	}
	if reg.Password != reg.ConfirmPassword {
		fields["confirm_password"] = "Passwords do not match"
	}
	return fields
}
