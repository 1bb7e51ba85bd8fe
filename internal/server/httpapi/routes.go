package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api")
	api.POST("/login", s.handleLogin)

	authed := api.Group("", s.requireSession)
	authed.POST("/logout", s.handleLogout)
	authed.GET("/profile", s.handleGetProfile)
	authed.PATCH("/profile", s.handleUpdateProfile)

	authed.GET("/jobs", s.handleListJobs)
	authed.GET("/favorites", s.handleListFavorites)
	authed.POST("/jobs/:id/favorite", s.handleToggleFavorite)
	authed.DELETE("/jobs/:id/favorite", s.handleRemoveFavorite)
	authed.POST("/jobs/:id/call", s.handleCallEmployer)
	authed.POST("/jobs/:id/book", s.handleBook)

	authed.GET("/dialog", s.handleGetDialog)
	authed.DELETE("/dialog", s.handleDismissDialog)

	authed.GET("/income", s.handleIncome)
}
