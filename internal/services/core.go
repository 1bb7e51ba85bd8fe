// Package services contains the screen-level operations of jobapp, composed
// over the state core: authentication and profile editing, the job list with
// favorites, calling and booking, and the income ledger.
//
// Both the terminal client and the HTTP API call into these services; rules
// that span more than one store live here and nowhere else.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobapp/internal/catalog"
	"github.com/dmitrijs2005/jobapp/internal/dialog"
	"github.com/dmitrijs2005/jobapp/internal/ledger"
	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/metrics"
	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/dmitrijs2005/jobapp/internal/seed"
	"github.com/dmitrijs2005/jobapp/internal/session"
	"github.com/dmitrijs2005/jobapp/internal/users"
	"github.com/prometheus/client_golang/prometheus"
)

// Core bundles the stores built from one seed. Every service built from the
// same Core observes the same state.
type Core struct {
	Directory *users.Directory
	Session   *session.Store
	Catalog   *catalog.Catalog
	Dialog    *dialog.State
	Ledger    *ledger.Ledger
	Metrics   *metrics.Core
	Logger    logging.Logger
}

type coreOptions struct {
	logger     logging.Logger
	registerer prometheus.Registerer
	userOpts   []users.Option
}

type CoreOption func(*coreOptions)

func WithLogger(l logging.Logger) CoreOption {
	return func(o *coreOptions) { o.logger = l }
}

// WithRegisterer registers the core metrics on reg instead of a private
// registry.
func WithRegisterer(reg prometheus.Registerer) CoreOption {
	return func(o *coreOptions) { o.registerer = reg }
}

func WithDirectoryOptions(opts ...users.Option) CoreOption {
	return func(o *coreOptions) { o.userOpts = append(o.userOpts, opts...) }
}

// NewCore builds every store from d.
func NewCore(d seed.Data, opts ...CoreOption) (*Core, error) {
	o := coreOptions{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registerer == nil {
		o.registerer = prometheus.NewRegistry()
	}

	dir, err := users.NewDirectory(d.Identities, o.userOpts...)
	if err != nil {
		return nil, fmt.Errorf("build user directory: %w", err)
	}
	cat, err := catalog.New(d.Postings, o.logger)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	c := &Core{
		Directory: dir,
		Session:   session.NewStore(dir, o.logger),
		Catalog:   cat,
		Dialog:    dialog.NewState(),
		Ledger:    ledger.New(d.Balance, d.Transactions),
		Metrics:   metrics.NewCore(o.registerer),
		Logger:    o.logger,
	}
	c.Metrics.FavoritesSize.Set(float64(len(cat.Favorites())))
	c.Dialog.Subscribe(func(_, next models.Dialog) {
		if next.Active() {
			c.Metrics.DialogRequests.WithLabelValues(next.Kind.String()).Inc()
		}
	})
	c.Logger.Debug(context.Background(), "core ready",
		"identities", len(d.Identities), "postings", len(d.Postings))
	return c, nil
}
