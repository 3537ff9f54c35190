package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/filebox/internal/client/models"
)

// Account shows the signed-in user's details.
func (a *App) Account(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as: %s\n", a.session.Username)
	fmt.Fprintln(a.out, "Use the rmaccount command to delete this account.")
	return nil
}

// DeleteAccount permanently removes the account and everything it owns.
// The confirmation spells out that all uploaded files go with it. On
// success the local session is gone and the user is back at the anonymous
// prompt.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.guard(ctx) {
		return nil
	}

	ok, err := getConfirmation(a.reader,
		fmt.Sprintf("Delete the account %q? All uploaded files will be removed. This cannot be undone.",
			a.session.Username), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Account deletion cancelled.")
		return nil
	}

	fmt.Fprintln(a.out, "Deleting account...")

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	msg, err := a.accountService.DeleteAccount(reqCtx)
	if err != nil {
		if a.handleAuthFailure(ctx, err) {
			return err
		}
		fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
		return err
	}

	if msg == "" {
		msg = "Account deleted."
	}
	fmt.Fprintln(a.out, msg)
	sleep(a.config.NavigateDelay)
	a.session = models.Session{}
	return nil
}
