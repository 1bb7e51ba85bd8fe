// Package httpapi exposes the jobapp services over a JSON HTTP API built on
// echo. Every route except login, /health and /metrics requires the bearer
// token issued by the login that bound the current session.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/metrics"
	"github.com/dmitrijs2005/jobapp/internal/server/auth"
	"github.com/dmitrijs2005/jobapp/internal/services"
	"github.com/dmitrijs2005/jobapp/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 5 * time.Second

// Registry is where the HTTP metrics are registered and /metrics reads from.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

type Server struct {
	echo    *echo.Echo
	address string
	auth    services.AuthService
	jobs    services.JobService
	income  services.IncomeService
	issuer  *auth.Issuer
	logger  logging.Logger
	metrics *metrics.HTTP
	gather  prometheus.Gatherer

	// loginMu serializes logins so the bound token id always matches the
	// login that produced it.
	loginMu sync.Mutex
	tokenMu sync.RWMutex
	tokenID string
}

// NewServer wires the routes of the API over core.
func NewServer(address string, core *services.Core, issuer *auth.Issuer, l logging.Logger, reg Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{v: validator.New(validator.WithRequiredStructEnabled())}

	s := &Server{
		echo:    e,
		address: address,
		auth:    services.NewAuthService(core, nil),
		jobs:    services.NewJobService(core),
		income:  services.NewIncomeService(core),
		issuer:  issuer,
		logger:  l.With("module", "http_server"),
		metrics: metrics.NewHTTP(reg),
		gather:  reg,
	}
	e.HTTPErrorHandler = s.handleError
	core.Session.Subscribe(s.handleSessionEvent)

	s.registerMiddleware()
	s.registerRoutes()
	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleSessionEvent drops the bound token id on every login and logout, so
// only the token issued for the current login is accepted.
func (s *Server) handleSessionEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventLogin, session.EventLogout:
		s.bindToken("")
	}
}

func (s *Server) bindToken(id string) {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	s.tokenID = id
}

func (s *Server) boundToken() string {
	s.tokenMu.RLock()
	defer s.tokenMu.RUnlock()
	return s.tokenID
}

type requestValidator struct {
	v *validator.Validate
}

func (r *requestValidator) Validate(i any) error {
	return r.v.Struct(i)
}
