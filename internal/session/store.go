// Package session holds the single authenticated identity of the running
// application.
//
// A Store is shared by every screen; all of its operations are synchronous
// and take effect immediately for every holder of the same *Store.
// Listeners registered with Subscribe learn about transitions, which is how
// the navigation layer knows to return to the login screen after logout.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/dmitrijs2005/jobapp/internal/users"
)

// EventKind names a session transition.
type EventKind int

const (
	EventLogin EventKind = iota + 1
	EventLogout
	EventProfileUpdated
)

func (k EventKind) String() string {
	switch k {
	case EventLogin:
		return "login"
	case EventLogout:
		return "logout"
	case EventProfileUpdated:
		return "profile_updated"
	default:
		return "unknown"
	}
}

// Event describes a completed transition. Identity is the newly bound value,
// or the identity that was just unbound for EventLogout.
type Event struct {
	Kind     EventKind
	Identity models.Identity
}

type Store struct {
	mu        sync.Mutex
	dir       users.Lookup
	logger    logging.Logger
	current   *models.Identity
	listeners []func(Event)
}

func NewStore(dir users.Lookup, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{dir: dir, logger: logger.With("module", "session")}
}

// Subscribe registers fn to be called after every transition. Listeners run
// synchronously in the caller's goroutine, outside the store lock.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Authenticate binds the identity matching username and secret. On failure
// it returns common.ErrInvalidCredentials and leaves the session as it was.
func (s *Store) Authenticate(ctx context.Context, username, secret string) (models.Identity, error) {
	u, ok := s.dir.FindByCredentials(username, secret)
	if !ok {
		s.logger.Warn(ctx, "authentication failed", "username", username)
		return models.Identity{}, common.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.current = &u
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Info(ctx, "session bound", "user_id", u.ID)
	notify(listeners, Event{Kind: EventLogin, Identity: u})
	return u, nil
}

// Current returns the bound identity, if any.
func (s *Store) Current() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return models.Identity{}, false
	}
	return *s.current, true
}

// UpdateProfile replaces the supplied profile fields of the bound identity
// with a new value. It fails with common.ErrNoActiveSession when logged out.
func (s *Store) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.Identity, error) {
	return s.updateProfile(ctx, nil, patch)
}

// UpdateProfileOf is UpdateProfile guarded by the identity the edits were
// made for: when userID is no longer the bound identity it fails with
// common.ErrNoActiveSession and nothing changes.
func (s *Store) UpdateProfileOf(ctx context.Context, userID int, patch models.ProfilePatch) (models.Identity, error) {
	return s.updateProfile(ctx, &userID, patch)
}

// updateProfile applies patch to the bound identity. When userID is set it
// must match that identity.
func (s *Store) updateProfile(ctx context.Context, userID *int, patch models.ProfilePatch) (models.Identity, error) {
	s.mu.Lock()
	if s.current == nil || (userID != nil && s.current.ID != *userID) {
		s.mu.Unlock()
		return models.Identity{}, common.ErrNoActiveSession
	}
	updated := s.current.WithProfile(patch)
	s.current = &updated
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Info(ctx, "profile updated", "user_id", updated.ID)
	notify(listeners, Event{Kind: EventProfileUpdated, Identity: updated})
	return updated, nil
}

// Logout clears the session. Calling it while logged out is a no-op and
// emits no event.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	prev := *s.current
	s.current = nil
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Info(ctx, "session cleared", "user_id", prev.ID)
	notify(listeners, Event{Kind: EventLogout, Identity: prev})
}

func (s *Store) snapshotListeners() []func(Event) {
	out := make([]func(Event), len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify(listeners []func(Event), ev Event) {
	for _, fn := range listeners {
		fn(ev)
	}
}
