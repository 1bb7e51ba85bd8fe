// Package users implements the identity directory: a fixed table of
// registered users built once at process start and looked up by
// credentials or id.
package users

import (
	"fmt"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Lookup is the read side of the directory used by the session store.
type Lookup interface {
	FindByCredentials(username, secret string) (models.Identity, bool)
	FindByID(id int) (models.Identity, bool)
}

type Directory struct {
	identities []models.Identity
	byUsername map[string]int
	byID       map[int]int
}

type options struct {
	cost int
}

// Option configures NewDirectory.
type Option func(*options)

// WithBcryptCost sets the cost used to hash seed secrets. Tests use
// bcrypt.MinCost to keep construction fast.
func WithBcryptCost(cost int) Option {
	return func(o *options) { o.cost = cost }
}

// NewDirectory hashes every seed secret and indexes the identities by id and
// username. Duplicate ids or usernames are rejected.
func NewDirectory(seed []models.Identity, opts ...Option) (*Directory, error) {
	o := options{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Directory{
		identities: make([]models.Identity, 0, len(seed)),
		byUsername: make(map[string]int, len(seed)),
		byID:       make(map[int]int, len(seed)),
	}

	for _, u := range seed {
		if _, ok := d.byID[u.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", common.ErrDuplicateIdentity, u.ID)
		}
		if _, ok := d.byUsername[u.Username]; ok {
			return nil, fmt.Errorf("%w: username %q", common.ErrDuplicateIdentity, u.Username)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Secret), o.cost)
		if err != nil {
			return nil, fmt.Errorf("hash secret for %q: %w", u.Username, err)
		}
		u.Secret = string(hash)

		d.byID[u.ID] = len(d.identities)
		d.byUsername[u.Username] = len(d.identities)
		d.identities = append(d.identities, u)
	}

	return d, nil
}

// FindByCredentials returns the identity whose username and secret both
// match. The returned value carries the hashed secret.
func (d *Directory) FindByCredentials(username, secret string) (models.Identity, bool) {
	idx, ok := d.byUsername[username]
	if !ok {
		return models.Identity{}, false
	}
	u := d.identities[idx]
	if bcrypt.CompareHashAndPassword([]byte(u.Secret), []byte(secret)) != nil {
		return models.Identity{}, false
	}
	return u, true
}

func (d *Directory) FindByID(id int) (models.Identity, bool) {
	idx, ok := d.byID[id]
	if !ok {
		return models.Identity{}, false
	}
	return d.identities[idx], true
}

// All returns the identities in seed order.
func (d *Directory) All() []models.Identity {
	out := make([]models.Identity, len(d.identities))
	copy(out, d.identities)
	return out
}
