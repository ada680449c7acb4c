package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
	passwordMinLen = 8

	// The special characters the signup form accepts in passwords.
	passwordSpecials = "@$!%*?&"
)

// AccountInput carries the user-supplied fields of a registration.
type AccountInput struct {
	Mobile          string
	Username        string
	Password        string
	ConfirmPassword string
}

// ValidateAccountInput checks a signup submission: mobile format, username
// length, password strength, and password confirmation equality.
func ValidateAccountInput(in AccountInput) Errors {
	errs := Errors{}

	validateMobile(errs, "mobile", in.Mobile)
	validateUsername(errs, in.Username)
	validatePassword(errs, "password", in.Password)

	if in.ConfirmPassword == "" {
		errs.Add("confirmPassword", "Confirm password is required")
	} else if in.ConfirmPassword != in.Password {
		errs.Add("confirmPassword", "Passwords must match")
	}

	return errs
}

// ValidateProfileInput checks the editable profile fields (username, mobile).
func ValidateProfileInput(username, mobile string) Errors {
	errs := Errors{}
	validateMobile(errs, "mobile", mobile)
	validateUsername(errs, username)
	return errs
}

// ValidatePasswordChange checks a new password and its confirmation using the
// same strength rule as registration.
func ValidatePasswordChange(newPassword, confirm string) Errors {
	errs := Errors{}
	validatePassword(errs, "newPassword", newPassword)
	if confirm == "" {
		errs.Add("confirmPassword", "Confirm password is required")
	} else if confirm != newPassword {
		errs.Add("confirmPassword", "Passwords must match")
	}
	return errs
}

func validateMobile(errs Errors, field, mobile string) {
	if mobile == "" {
		errs.Add(field, "Mobile number is required")
	} else if !MobileRE.MatchString(mobile) {
		errs.Add(field, "Mobile number must be exactly 10 digits")
	}
}

func validateUsername(errs Errors, username string) {
	n := utf8.RuneCountInString(username)
	switch {
	case username == "":
		errs.Add("username", "Username is required")
	case n < usernameMinLen:
		errs.Add("username", "Username must be at least 3 characters")
	case n > usernameMaxLen:
		errs.Add("username", "Username must not exceed 20 characters")
	}
}

func validatePassword(errs Errors, field, password string) {
	if password == "" {
		errs.Add(field, "Password is required")
		return
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		errs.Add(field, "Password must be at least 8 characters")
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !lower || !upper || !digit || !special {
		errs.Add(field, "Password must contain uppercase, lowercase, number and special character")
	}
}
