package cli

import (
	"sync"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/session"
)

type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenSearch    Screen = "search"
	ScreenFavorites Screen = "favorites"
	ScreenProfile   Screen = "profile"
	ScreenIncome    Screen = "income"
)

// RequiresSession reports whether the screen may only be shown while a
// session is bound.
func (s Screen) RequiresSession() bool {
	return s != ScreenLogin
}

// Navigator tracks the visible screen and the back history.
type Navigator struct {
	mu       sync.Mutex
	current  Screen
	history  []Screen
	loggedIn bool
	onLeave  func(from Screen)
}

func NewNavigator() *Navigator {
	return &Navigator{current: ScreenLogin}
}

// OnLeave registers fn to be called whenever the visible screen changes
// away from from. Only one callback is kept.
func (n *Navigator) OnLeave(fn func(from Screen)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onLeave = fn
}

func (n *Navigator) Current() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// History returns the back stack, oldest first.
func (n *Navigator) History() []Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Screen(nil), n.history...)
}

// Navigate shows to and pushes the current screen on the history. Screens
// that need a session fail with common.ErrNoActiveSession while logged out.
func (n *Navigator) Navigate(to Screen) error {
	n.mu.Lock()
	if to.RequiresSession() && !n.loggedIn {
		n.mu.Unlock()
		return common.ErrNoActiveSession
	}
	from := n.current
	if from == to {
		n.mu.Unlock()
		return nil
	}
	n.history = append(n.history, from)
	n.current = to
	leave := n.onLeave
	n.mu.Unlock()

	if leave != nil {
		leave(from)
	}
	return nil
}

// Back returns to the previous screen. It reports false when the history is
// empty.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.history) == 0 {
		n.mu.Unlock()
		return false
	}
	from := n.current
	n.current = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	leave := n.onLeave
	n.mu.Unlock()

	if leave != nil {
		leave(from)
	}
	return true
}

// reset shows to with an empty history.
func (n *Navigator) reset(to Screen, loggedIn bool) {
	n.mu.Lock()
	from := n.current
	n.current = to
	n.history = nil
	n.loggedIn = loggedIn
	leave := n.onLeave
	n.mu.Unlock()

	if leave != nil && from != to {
		leave(from)
	}
}

// HandleSessionEvent follows session transitions: a login opens the search
// screen, a logout forces the login screen and drops the history.
func (n *Navigator) HandleSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventLogin:
		n.reset(ScreenSearch, true)
	case session.EventLogout:
		n.reset(ScreenLogin, false)
	}
}
