package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filebox/internal/client/models"
	"github.com/dmitrijs2005/filebox/internal/client/services"
	"github.com/dmitrijs2005/filebox/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// validateRegistration applies the local signup rules before anything is
// sent to the server. Checks run in a fixed order so the first failure
// is the one reported.
func validateRegistration(username, password string) error {
	if username == "" || password == "" {
		return errors.New("please enter a username and password")
	}
	if len([]rune(password)) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	if len([]rune(username)) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	return nil
}

func validateLogin(username, password string) error {
	if username == "" || password == "" {
		return errors.New("please enter a username and password")
	}
	return nil
}

// Register prompts for credentials, validates them locally and attempts to
// create an account. On success the user is directed to the login prompt.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validateRegistration(username, string(password)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Processing...")

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	msg, err := a.authService.Register(reqCtx, username, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
		return err
	}

	if msg == "" {
		msg = "Registration complete."
	}
	fmt.Fprintf(a.out, "%s Continue with the login command.\n", msg)
	sleep(a.config.NavigateDelay)
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// session is persisted, the prompt switches to the user's name and the
// file list is shown.
//
// A success response that carries no token establishes nothing; the user
// stays at the login prompt.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validateLogin(username, string(password)); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Logging in...")

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()

	sess, msg, err := a.authService.Login(reqCtx, username, string(password))
	if err != nil {
		if errors.Is(err, services.ErrNoToken) {
			fmt.Fprintln(a.out, "Login succeeded but no token was received. Please try again.")
			return err
		}
		fmt.Fprintf(a.out, "Error: %s\n", serverMessage(err))
		return err
	}

	if msg == "" {
		msg = "Login successful."
	}
	fmt.Fprintf(a.out, "%s Opening your files.\n", msg)
	sleep(a.config.NavigateDelay)

	a.session = sess
	return a.List(ctx)
}

// Logout clears the persisted session and returns to the anonymous prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "error clearing session", "error", err)
		return err
	}
	a.session = models.Session{}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
