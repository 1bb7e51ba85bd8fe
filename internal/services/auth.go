package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/dmitrijs2005/jobapp/internal/session"
)

// MsgProfileSaved is shown after a profile draft is committed.
const MsgProfileSaved = "Changes saved"

// AuthService defines session operations for the screens.
//
// Contract:
//   - Login: bind the identity matching the credentials.
//   - RequestLogout / ConfirmLogout / CancelLogout: the two-step logout
//     through the logout confirmation dialog.
//   - Logout: end the session without confirmation (API clients).
//   - NewProfileDraft / SaveProfile: edit profile fields locally, then commit.
//   - UpdateProfile: replace the supplied fields directly.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (models.Identity, error)
	Current() (models.Identity, bool)
	RequestLogout(ctx context.Context) error
	ConfirmLogout(ctx context.Context)
	CancelLogout(ctx context.Context)
	Logout(ctx context.Context)
	NewProfileDraft() (*session.Draft, error)
	SaveProfile(ctx context.Context, draft *session.Draft) (models.Identity, error)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Identity, error)
}

type authService struct {
	core     *Core
	notifier Notifier
}

// NewAuthService binds an AuthService to core. A nil notifier discards
// notices.
func NewAuthService(core *Core, notifier Notifier) AuthService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &authService{core: core, notifier: notifier}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (models.Identity, error) {
	u, err := a.core.Session.Authenticate(ctx, username, string(password))
	if err != nil {
		a.core.Metrics.AuthAttempts.WithLabelValues("failure").Inc()
		return models.Identity{}, err
	}
	a.core.Metrics.AuthAttempts.WithLabelValues("success").Inc()
	return u, nil
}

func (a *authService) Current() (models.Identity, bool) {
	return a.core.Session.Current()
}

// RequestLogout opens the logout confirmation dialog.
func (a *authService) RequestLogout(ctx context.Context) error {
	if _, ok := a.core.Session.Current(); !ok {
		return common.ErrNoActiveSession
	}
	a.core.Dialog.RequestLogoutConfirm()
	return nil
}

// ConfirmLogout ends the session and closes the confirmation dialog.
// Favorites are kept.
func (a *authService) ConfirmLogout(ctx context.Context) {
	a.Logout(ctx)
	if a.core.Dialog.Current().Kind == models.DialogLogoutConfirm {
		a.core.Dialog.Dismiss()
	}
}

// CancelLogout closes the confirmation dialog and keeps the session.
func (a *authService) CancelLogout(ctx context.Context) {
	if a.core.Dialog.Current().Kind == models.DialogLogoutConfirm {
		a.core.Dialog.Dismiss()
	}
}

func (a *authService) Logout(ctx context.Context) {
	if _, ok := a.core.Session.Current(); ok {
		a.core.Metrics.Logouts.Inc()
	}
	a.core.Session.Logout(ctx)
}

// NewProfileDraft starts a profile draft from the bound identity.
func (a *authService) NewProfileDraft() (*session.Draft, error) {
	u, ok := a.core.Session.Current()
	if !ok {
		return nil, common.ErrNoActiveSession
	}
	return session.NewDraft(u), nil
}

// SaveProfile commits the draft and shows MsgProfileSaved.
func (a *authService) SaveProfile(ctx context.Context, draft *session.Draft) (models.Identity, error) {
	if draft == nil {
		return models.Identity{}, errors.New("nil profile draft")
	}
	u, err := draft.Commit(ctx, a.core.Session)
	if err != nil {
		return models.Identity{}, err
	}
	a.core.Metrics.ProfileUpdates.Inc()
	a.notifier.Notify(ctx, MsgProfileSaved)
	return u, nil
}

func (a *authService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Identity, error) {
	u, err := a.core.Session.UpdateProfile(ctx, patch)
	if err != nil {
		return models.Identity{}, err
	}
	a.core.Metrics.ProfileUpdates.Inc()
	return u, nil
}
