package services

import "context"

// Notifier shows a short, non-blocking message to the user, e.g. "changes
// saved". Notify must return immediately.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, msg string)

func (f NotifierFunc) Notify(ctx context.Context, msg string) { f(ctx, msg) }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string) {}
