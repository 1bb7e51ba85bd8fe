package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/ledger"
	"github.com/dmitrijs2005/jobapp/internal/models"
)

func (a *App) Search(ctx context.Context) error {
	if err := a.nav.Navigate(ScreenSearch); err != nil {
		return err
	}
	return a.show(ctx, ScreenSearch)
}

func (a *App) Favorites(ctx context.Context) error {
	if err := a.nav.Navigate(ScreenFavorites); err != nil {
		return err
	}
	return a.show(ctx, ScreenFavorites)
}

func (a *App) Income(ctx context.Context) error {
	if err := a.nav.Navigate(ScreenIncome); err != nil {
		return err
	}
	return a.show(ctx, ScreenIncome)
}

func (a *App) Favorite(ctx context.Context, id string) error {
	n, err := a.postingAction(id)
	if err != nil {
		return err
	}
	p, err := a.jobService.ToggleFavorite(ctx, n)
	if err != nil {
		return err
	}
	if p.Favorited {
		fmt.Fprintf(a.out, "Added %q to favorites\n", p.Title)
	} else {
		fmt.Fprintf(a.out, "Removed %q from favorites\n", p.Title)
	}
	return nil
}

func (a *App) Unfavorite(ctx context.Context, id string) error {
	n, err := a.postingAction(id)
	if err != nil {
		return err
	}
	p, err := a.jobService.Get(ctx, n)
	if err != nil {
		return err
	}
	if !p.Favorited {
		fmt.Fprintf(a.out, "%q is not in favorites\n", p.Title)
		return nil
	}
	p, err = a.jobService.RemoveFavorite(ctx, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %q from favorites\n", p.Title)
	return nil
}

func (a *App) Call(ctx context.Context, id string) error {
	n, err := a.postingAction(id)
	if err != nil {
		return err
	}
	d, err := a.jobService.CallEmployer(ctx, n)
	if err != nil {
		return err
	}
	a.printDialog(d)
	return nil
}

func (a *App) Book(ctx context.Context, id string) error {
	n, err := a.postingAction(id)
	if err != nil {
		return err
	}
	d, err := a.jobService.Book(ctx, n)
	if err != nil {
		return err
	}
	a.printDialog(d)
	return nil
}

// DismissDialog closes the current dialog. A pending logout confirmation is
// answered with "no".
func (a *App) DismissDialog(ctx context.Context) error {
	if a.jobService.Dialog(ctx).Kind == models.DialogLogoutConfirm {
		return a.Confirm(ctx, false)
	}
	a.jobService.Dismiss(ctx)
	return nil
}

// postingAction checks the session and parses a posting id.
func (a *App) postingAction(id string) (int, error) {
	if !a.isLoggedIn() {
		return 0, common.ErrNoActiveSession
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, errInvalidID
	}
	return n, nil
}

func (a *App) printPostings(ps []models.Posting) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPAY\tEMPLOYER\tLOCATION\t")
	for _, p := range ps {
		mark := ""
		if p.Favorited {
			mark = "★"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Compensation, p.Employer, p.Location, mark)
	}
	w.Flush()
}

func (a *App) printIncome() {
	fmt.Fprintf(a.out, "Balance: %s\n", ledger.FormatAmount(a.incomeService.Balance()))
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, t := range a.incomeService.Transactions() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Date, t.Description, ledger.FormatAmount(t.Amount))
	}
	w.Flush()
}

func (a *App) printDialog(d models.Dialog) {
	switch d.Kind {
	case models.DialogPhoneReveal:
		fmt.Fprintf(a.out, "Employer phone: %s (type 'ok' to close)\n", d.Phone)
	case models.DialogBookingConfirmed:
		fmt.Fprintf(a.out, "%s (type 'ok' to close)\n", d.Message)
	}
}
