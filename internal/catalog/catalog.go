// Package catalog owns the shift postings and the favorites index derived
// from their Favorited flags.
//
// The flag and the index only change together, inside one critical section,
// so that the index holds exactly the favorited postings, in the order they
// were favorited, without duplicates.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/models"
)

type Catalog struct {
	mu        sync.RWMutex
	postings  []models.Posting
	byID      map[int]int
	favorites []int // posting ids, first-favorited first
	logger    logging.Logger
}

// New builds a catalog from seed postings, kept in seed order. Postings that
// arrive already favorited enter the index in seed order.
func New(seed []models.Posting, logger logging.Logger) (*Catalog, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	c := &Catalog{
		postings: make([]models.Posting, 0, len(seed)),
		byID:     make(map[int]int, len(seed)),
		logger:   logger.With("module", "catalog"),
	}
	for _, p := range seed {
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", common.ErrDuplicatePosting, p.ID)
		}
		c.byID[p.ID] = len(c.postings)
		c.postings = append(c.postings, p)
		if p.Favorited {
			c.favorites = append(c.favorites, p.ID)
		}
	}
	return c, nil
}

// List returns every posting in seed order.
func (c *Catalog) List() []models.Posting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.postings)
}

func (c *Catalog) Get(id int) (models.Posting, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.byID[id]
	if !ok {
		return models.Posting{}, fmt.Errorf("posting %d: %w", id, common.ErrPostingNotFound)
	}
	return c.postings[idx], nil
}

func (c *Catalog) IsFavorite(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.byID[id]
	return ok && c.postings[idx].Favorited
}

// Favorites returns a snapshot of the index. Later toggles do not affect a
// slice already returned.
func (c *Catalog) Favorites() []models.Posting {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Posting, 0, len(c.favorites))
	for _, id := range c.favorites {
		out = append(out, c.postings[c.byID[id]])
	}
	return out
}

// ToggleFavorite flips the posting's flag and adds it to or removes it from
// the index. Unknown ids yield common.ErrPostingNotFound.
func (c *Catalog) ToggleFavorite(ctx context.Context, id int) (models.Posting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.byID[id]
	if !ok {
		c.logger.Warn(ctx, "toggle favorite on unknown posting", "posting_id", id)
		return models.Posting{}, fmt.Errorf("posting %d: %w", id, common.ErrPostingNotFound)
	}
	p := c.setFavorite(idx, !c.postings[idx].Favorited)
	c.logger.Debug(ctx, "favorite toggled", "posting_id", id, "favorited", p.Favorited)
	return p, nil
}

// RemoveFavorite unfavorites the posting. A posting that is not favorited is
// left untouched.
func (c *Catalog) RemoveFavorite(ctx context.Context, id int) (models.Posting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.byID[id]
	if !ok {
		c.logger.Warn(ctx, "remove favorite on unknown posting", "posting_id", id)
		return models.Posting{}, fmt.Errorf("posting %d: %w", id, common.ErrPostingNotFound)
	}
	if !c.postings[idx].Favorited {
		return c.postings[idx], nil
	}
	p := c.setFavorite(idx, false)
	c.logger.Debug(ctx, "favorite removed", "posting_id", id)
	return p, nil
}

// setFavorite is the only writer of Favorited and of the index.
// Callers hold c.mu.
func (c *Catalog) setFavorite(idx int, on bool) models.Posting {
	p := &c.postings[idx]
	if p.Favorited == on {
		return *p
	}
	p.Favorited = on
	if on {
		c.favorites = append(c.favorites, p.ID)
	} else {
		c.favorites = slices.DeleteFunc(c.favorites, func(id int) bool { return id == p.ID })
	}
	return *p
}
