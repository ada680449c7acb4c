package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/sms"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
)

// Register walks the signup form: mobile, username, password with
// confirmation. A duplicate mobile redirects the user to login.
func (a *App) Register(ctx context.Context) error {
	mobile, err := GetSimpleText(a.reader, "Enter mobile number (10 digits)", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	account, err := a.accounts.Register(ctx, validation.AccountInput{
		Mobile:          mobile,
		Username:        username,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	})
	if err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			printFieldErrors(a.out, errs)
			return nil
		}
		if errors.Is(err, common.ErrDuplicateAccount) {
			a.println("This mobile number is already registered. Use 'login' instead.")
			return nil
		}
		return err
	}

	a.printf("Account created for %s. You can log in now.\n", account.Username)
	return nil
}

// Login authenticates by mobile and password and installs the session.
func (a *App) Login(ctx context.Context) error {
	mobile, err := GetSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, ok := a.accounts.Authenticate(ctx, mobile, string(password))
	if !ok {
		a.println("Invalid mobile number or password.")
		return nil
	}

	if _, err := a.accounts.Login(ctx, *account); err != nil {
		return err
	}
	a.printf("Welcome back, %s!\n", account.Username)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

// Forgot is the password-recovery flow: the mobile number is verified
// against the registered accounts, then a new password is set.
func (a *App) Forgot(ctx context.Context) error {
	mobile, err := GetSimpleText(a.reader, "Enter your registered mobile number", a.out)
	if err != nil {
		return err
	}
	if _, ok := a.accounts.CheckExists(mobile); !ok {
		a.println("No account found for", sms.MaskMobile(mobile))
		return nil
	}
	a.println("Mobile verified. Now set your new password.")

	password, err := GetPassword("Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if errs := validation.ValidatePasswordChange(string(password), string(confirm)); !errs.Ok() {
		printFieldErrors(a.out, errs)
		return nil
	}

	if err := a.accounts.ResetPassword(ctx, mobile, string(password)); err != nil {
		return err
	}
	a.println("Password reset. You can log in now.")
	return nil
}
