// Package metrics defines the Prometheus collectors exported by jobapp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jobapp"

// Core counts user-visible actions on the state core.
type Core struct {
	AuthAttempts    *prometheus.CounterVec
	Logouts         prometheus.Counter
	ProfileUpdates  prometheus.Counter
	FavoriteChanges *prometheus.CounterVec
	FavoritesSize   prometheus.Gauge
	DialogRequests  *prometheus.CounterVec
	Bookings        prometheus.Counter
}

// NewCore creates the core collectors and registers them on reg.
func NewCore(reg prometheus.Registerer) *Core {
	m := &Core{
		AuthAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "auth_attempts_total",
			Help:      "Authentication attempts by result.",
		}, []string{"result"}),
		Logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "logouts_total",
			Help:      "Confirmed logouts.",
		}),
		ProfileUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "profile_updates_total",
			Help:      "Saved profile edits.",
		}),
		FavoriteChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "favorite_changes_total",
			Help:      "Favorite flag changes by action.",
		}, []string{"action"}),
		FavoritesSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "favorites",
			Help:      "Number of postings currently favorited.",
		}),
		DialogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dialog",
			Name:      "requests_total",
			Help:      "Transient dialog requests by kind.",
		}, []string{"kind"}),
		Bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "bookings_total",
			Help:      "Shift bookings confirmed.",
		}),
	}

	reg.MustRegister(
		m.AuthAttempts,
		m.Logouts,
		m.ProfileUpdates,
		m.FavoriteChanges,
		m.FavoritesSize,
		m.DialogRequests,
		m.Bookings,
	)
	return m
}
