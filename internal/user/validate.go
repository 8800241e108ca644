package user

import (
	"strings"
	"unicode"

	"shopswift-be/internal/utils"
)

const minPasswordLength = 8

// ValidateLogin checks format only; there are no stored credentials.
func ValidateLogin(in LoginInput) error {
	v := utils.NewValidationError()

	if !utils.IsEmail(in.Email) {
		v.Add("email", "Please enter a valid email address.")
	}
	if len(in.Password) < minPasswordLength {
		v.Add("password", "Password must be at least 8 characters.")
	}

	return v.OrNil()
}

func ValidateSignup(in SignupInput) error {
	v := utils.NewValidationError()

	if strings.TrimSpace(in.Name) == "" {
		v.Add("name", "Full name is required")
	}
	if !utils.IsEmail(in.Email) {
		v.Add("email", "Valid email is required")
	}
	if !strongPassword(in.Password) {
		v.Add("password", "Min 8 chars, 1 uppercase, 1 lowercase, 1 number")
	}
	if in.Password != in.ConfirmPassword {
		v.Add("confirmPassword", "Passwords do not match")
	}

	return v.OrNil()
}

func strongPassword(p string) bool {
	if len(p) < minPasswordLength {
		return false
	}

	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
