package cli

import (
	"context"
	"fmt"
)

// Profile opens the profile screen and starts a draft from the bound
// identity. An existing draft is kept when the screen is already open.
func (a *App) Profile(ctx context.Context) error {
	if err := a.nav.Navigate(ScreenProfile); err != nil {
		return err
	}
	if a.draft == nil {
		d, err := a.authService.NewProfileDraft()
		if err != nil {
			return err
		}
		a.draft = d
	}

	u := a.draft.Preview()
	fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\nPhone: %s\n", u.DisplayName, u.Email, u.Phone)
	if a.draft.Dirty() {
		fmt.Fprintln(a.out, "(unsaved changes, type 'save')")
	}
	return nil
}

// SetField edits one field of the open profile draft.
func (a *App) SetField(ctx context.Context, field, value string) error {
	if a.nav.Current() != ScreenProfile || a.draft == nil {
		return errNotOnProfile
	}
	switch field {
	case "name":
		a.draft.SetDisplayName(value)
	case "email":
		a.draft.SetEmail(value)
	case "phone":
		a.draft.SetPhone(value)
	default:
		return errUnknownField
	}
	return nil
}

// SaveProfile commits the draft. The notifier prints the confirmation.
func (a *App) SaveProfile(ctx context.Context) error {
	if a.nav.Current() != ScreenProfile || a.draft == nil {
		return errNotOnProfile
	}
	_, err := a.authService.SaveProfile(ctx, a.draft)
	return err
}
