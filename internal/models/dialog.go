package models

import "fmt"

// DialogKind tags the active transient dialog.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogPhoneReveal
	DialogBookingConfirmed
	DialogLogoutConfirm
)

func (k DialogKind) String() string {
	switch k {
	case DialogNone:
		return "none"
	case DialogPhoneReveal:
		return "phone_reveal"
	case DialogBookingConfirmed:
		return "booking_confirmed"
	case DialogLogoutConfirm:
		return "logout_confirm"
	default:
		return fmt.Sprintf("DialogKind(%d)", int(k))
	}
}

// MarshalText lets the kind travel as its name in JSON.
func (k DialogKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Dialog is the single transient dialog slot. Phone is set only for
// DialogPhoneReveal, Message only for DialogBookingConfirmed.
type Dialog struct {
	Kind    DialogKind `json:"kind"`
	Phone   string     `json:"phone,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Active reports whether a dialog is shown.
func (d Dialog) Active() bool { return d.Kind != DialogNone }
