package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSignup() AccountInput {
	return AccountInput{
		Mobile:          "9876543210",
		Username:        "ravi",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	}
}

func TestValidateAccountInput_Valid(t *testing.T) {
	errs := ValidateAccountInput(validSignup())
	assert.True(t, errs.Ok(), "unexpected: %v", errs)
}

func TestValidateAccountInput_Mobile(t *testing.T) {
	tests := []struct {
		name   string
		mobile string
		want   string
	}{
		{"empty", "", "Mobile number is required"},
		{"short", "12345", "Mobile number must be exactly 10 digits"},
		{"letters", "98765abc10", "Mobile number must be exactly 10 digits"},
		{"eleven digits", "98765432100", "Mobile number must be exactly 10 digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignup()
			in.Mobile = tt.mobile
			errs := ValidateAccountInput(in)
			assert.Equal(t, []string{tt.want}, errs["mobile"])
		})
	}
}

func TestValidateAccountInput_Username(t *testing.T) {
	in := validSignup()

	in.Username = "ab"
	assert.Equal(t, []string{"Username must be at least 3 characters"},
		ValidateAccountInput(in)["username"])

	in.Username = "abcdefghijklmnopqrstu" // 21 runes
	assert.Equal(t, []string{"Username must not exceed 20 characters"},
		ValidateAccountInput(in)["username"])
}

func TestValidateAccountInput_PasswordStrength(t *testing.T) {
	weak := []string{
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigitsHere!",
		"NoSpecial123",
	}
	for _, pw := range weak {
		in := validSignup()
		in.Password = pw
		in.ConfirmPassword = pw
		errs := ValidateAccountInput(in)
		assert.Contains(t, errs, "password", "password %q should be rejected", pw)
	}

	in := validSignup()
	in.Password = "Sh0rt!a"
	in.ConfirmPassword = "Sh0rt!a"
	assert.Contains(t, ValidateAccountInput(in)["password"],
		"Password must be at least 8 characters")
}

func TestValidateAccountInput_Confirmation(t *testing.T) {
	in := validSignup()
	in.ConfirmPassword = "Different1!"
	errs := ValidateAccountInput(in)
	assert.Equal(t, []string{"Passwords must match"}, errs["confirmPassword"])
}

func TestValidatePasswordChange(t *testing.T) {
	assert.True(t, ValidatePasswordChange("N3w!passw", "N3w!passw").Ok())
	assert.Contains(t, ValidatePasswordChange("weakpass", "weakpass"), "newPassword")
	assert.Contains(t, ValidatePasswordChange("N3w!passw", "other"), "confirmPassword")
}

func TestValidateProfileInput(t *testing.T) {
	assert.True(t, ValidateProfileInput("ravi", "9876543210").Ok())
	errs := ValidateProfileInput("ab", "123")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "mobile")
}
