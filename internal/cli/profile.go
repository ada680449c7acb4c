package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
)

// Profile shows the current account and lets the user edit the username and
// mobile number. Empty input keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	session, ok := a.session()
	if !ok {
		return nil
	}

	account := session.Account
	a.printf("Username: %s\nMobile:   %s\nRole:     %s\nSince:    %s\n",
		account.Username, account.Mobile, account.Role, account.CreatedAt.Format("2006-01-02"))

	username, err := GetSimpleText(a.reader, "New username (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = account.Username
	}
	mobile, err := GetSimpleText(a.reader, "New mobile (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if mobile == "" {
		mobile = account.Mobile
	}
	if username == account.Username && mobile == account.Mobile {
		a.println("Nothing to change.")
		return nil
	}

	updated, err := a.accounts.UpdateAccount(ctx, username, mobile)
	if err != nil {
		var errs validation.Errors
		if errors.As(err, &errs) {
			printFieldErrors(a.out, errs)
			return nil
		}
		if errors.Is(err, common.ErrDuplicateAccount) {
			a.println("That mobile number belongs to another account.")
			return nil
		}
		return err
	}
	a.printf("Profile updated: %s (%s)\n", updated.Username, updated.Mobile)
	return nil
}

// Passwd changes the password of the logged-in account after verifying the
// current one.
func (a *App) Passwd(ctx context.Context) error {
	if _, ok := a.session(); !ok {
		return nil
	}

	current, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)
	confirm, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if errs := validation.ValidatePasswordChange(string(next), string(confirm)); !errs.Ok() {
		printFieldErrors(a.out, errs)
		return nil
	}

	if err := a.accounts.ChangePassword(ctx, string(current), string(next)); err != nil {
		if errors.Is(err, common.ErrIncorrectCredential) {
			a.println("Current password is incorrect.")
			return nil
		}
		return err
	}
	a.println("Password changed.")
	return nil
}
