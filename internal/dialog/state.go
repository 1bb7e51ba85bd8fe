// Package dialog implements the single transient dialog slot shared by all
// screens. At most one dialog is visible; a new request replaces the current
// one instead of stacking on top of it.
package dialog

import (
	"sync"

	"github.com/dmitrijs2005/jobapp/internal/models"
)

type State struct {
	mu        sync.Mutex
	current   models.Dialog
	listeners []func(prev, next models.Dialog)
}

func NewState() *State {
	return &State{}
}

func (s *State) Current() models.Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers fn to be called after every change of the slot.
func (s *State) Subscribe(fn func(prev, next models.Dialog)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *State) RequestPhoneReveal(phone string) {
	s.set(models.Dialog{Kind: models.DialogPhoneReveal, Phone: phone}, false)
}

func (s *State) RequestBookingConfirmation(message string) {
	s.set(models.Dialog{Kind: models.DialogBookingConfirmed, Message: message}, false)
}

func (s *State) RequestLogoutConfirm() {
	s.set(models.Dialog{Kind: models.DialogLogoutConfirm}, false)
}

// Dismiss closes the active dialog. It is a no-op when none is shown.
func (s *State) Dismiss() {
	s.set(models.Dialog{}, true)
}

func (s *State) set(next models.Dialog, onlyIfActive bool) {
	s.mu.Lock()
	prev := s.current
	if onlyIfActive && !prev.Active() {
		s.mu.Unlock()
		return
	}
	s.current = next
	listeners := make([]func(prev, next models.Dialog), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
}
