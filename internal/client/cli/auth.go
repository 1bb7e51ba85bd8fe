package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobapp/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and binds the session. The navigator moves
// to the search screen on success.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	u, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.DisplayName)
	return a.show(ctx, a.nav.Current())
}

// Logout asks for confirmation; the session ends only after "yes".
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.RequestLogout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Log out? (yes/no)")
	return nil
}

// Confirm answers the logout confirmation dialog.
func (a *App) Confirm(ctx context.Context, yes bool) error {
	if a.jobService.Dialog(ctx).Kind != models.DialogLogoutConfirm {
		return errNoConfirm
	}
	if !yes {
		a.authService.CancelLogout(ctx)
		return nil
	}
	a.authService.ConfirmLogout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
