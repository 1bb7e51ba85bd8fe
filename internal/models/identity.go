// Package models holds the value types shared by the jobapp core stores and
// their drivers.
package models

// AvatarRef is an opaque handle to a profile image owned by the presentation
// layer. The core passes it through untouched.
type AvatarRef string

// Identity is a registered user record.
//
// Only DisplayName, Email and Phone are user-editable; stores replace the
// whole value rather than mutating it in place.
type Identity struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Secret      string    `json:"-"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Avatar      AvatarRef `json:"avatar,omitempty"`
}

// ProfilePatch lists the profile fields to replace. Nil fields are left as is.
type ProfilePatch struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// Empty reports whether the patch carries no field at all.
func (p ProfilePatch) Empty() bool {
	return p.DisplayName == nil && p.Email == nil && p.Phone == nil
}

// WithProfile returns a copy of i with the supplied patch fields replaced.
func (i Identity) WithProfile(p ProfilePatch) Identity {
	if p.DisplayName != nil {
		i.DisplayName = *p.DisplayName
	}
	if p.Email != nil {
		i.Email = *p.Email
	}
	if p.Phone != nil {
		i.Phone = *p.Phone
	}
	return i
}
