package httpapi

import (
	"strings"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const identityKey = "identity"

func (s *Server) registerMiddleware() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	// Metrics wrap the logger so that they observe the status written by
	// the error handler.
	s.echo.Use(s.metrics.Middleware())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			args := []any{
				"request_id", v.RequestID,
				"method", v.Method,
				"path", v.URIPath,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				s.logger.Warn(c.Request().Context(), "request failed", append(args, "error", v.Error)...)
				return nil
			}
			s.logger.Debug(c.Request().Context(), "request", args...)
			return nil
		},
	}))
}

// requireSession admits a request only when its bearer token was issued by
// the login that bound the current session. Any later logout or login
// invalidates it, including a new login by the same identity.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		if !ok || token == "" {
			return common.ErrInvalidToken
		}

		claims, err := s.issuer.ParseToken(token)
		if err != nil {
			return err
		}

		current, ok := s.auth.Current()
		if !ok || current.ID != claims.UserID || s.boundToken() != claims.ID {
			return common.ErrNoActiveSession
		}

		c.Set(identityKey, current)
		return next(c)
	}
}
