package session

import (
	"context"

	"github.com/dmitrijs2005/jobapp/internal/models"
)

// Draft collects profile edits made on the profile screen before they are
// saved. A draft belongs to the screen that created it: leaving the screen
// drops it and nothing reaches the store until Commit.
type Draft struct {
	base        models.Identity
	displayName string
	email       string
	phone       string
}

// NewDraft starts a draft from the currently bound identity.
func NewDraft(base models.Identity) *Draft {
	return &Draft{
		base:        base,
		displayName: base.DisplayName,
		email:       base.Email,
		phone:       base.Phone,
	}
}

func (d *Draft) SetDisplayName(v string) { d.displayName = v }
func (d *Draft) SetEmail(v string)       { d.email = v }
func (d *Draft) SetPhone(v string)       { d.phone = v }

// Preview is the identity as it would look after Commit.
func (d *Draft) Preview() models.Identity {
	return d.base.WithProfile(d.Patch())
}

// Patch holds only the fields that differ from the draft's base.
func (d *Draft) Patch() models.ProfilePatch {
	var p models.ProfilePatch
	if d.displayName != d.base.DisplayName {
		v := d.displayName
		p.DisplayName = &v
	}
	if d.email != d.base.Email {
		v := d.email
		p.Email = &v
	}
	if d.phone != d.base.Phone {
		v := d.phone
		p.Phone = &v
	}
	return p
}

// Dirty reports whether any field was edited.
func (d *Draft) Dirty() bool { return !d.Patch().Empty() }

// IdentityID is the id of the identity the draft was started for.
func (d *Draft) IdentityID() int { return d.base.ID }

// Commit applies the edited fields to s and rebases the draft on the result.
// It fails with common.ErrNoActiveSession unless the draft's identity is
// still the one bound to s.
func (d *Draft) Commit(ctx context.Context, s *Store) (models.Identity, error) {
	updated, err := s.UpdateProfileOf(ctx, d.base.ID, d.Patch())
	if err != nil {
		return models.Identity{}, err
	}
	*d = *NewDraft(updated)
	return updated, nil
}
