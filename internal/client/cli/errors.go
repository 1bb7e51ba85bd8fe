package cli

import (
	"errors"

	"github.com/dmitrijs2005/jobapp/internal/common"
)

var (
	errInvalidID    = errors.New("posting id must be a number")
	errNotOnProfile = errors.New("open the profile screen first")
	errUnknownField = errors.New("field must be one of name, email, phone")
	errNoHistory    = errors.New("no previous screen")
	errNoConfirm    = errors.New("nothing to confirm")
)

func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "wrong username or password"
	case errors.Is(err, common.ErrNoActiveSession):
		return "please log in first"
	case errors.Is(err, common.ErrPostingNotFound):
		return "no such posting"
	default:
		return err.Error()
	}
}
