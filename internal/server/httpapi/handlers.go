package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/jobapp/internal/ledger"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s.loginMu.Lock()
	defer s.loginMu.Unlock()

	ctx := c.Request().Context()
	u, err := s.auth.Login(ctx, req.Username, []byte(req.Password))
	if err != nil {
		return err
	}

	token, tokenID, err := s.issuer.GenerateToken(u.ID)
	if err != nil {
		return err
	}
	s.bindToken(tokenID)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: u})
}

func (s *Server) handleLogout(c echo.Context) error {
	s.auth.ConfirmLogout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, c.Get(identityKey))
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := s.auth.UpdateProfile(c.Request().Context(), req.patch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) handleListJobs(c echo.Context) error {
	return c.JSON(http.StatusOK, s.jobs.List(c.Request().Context()))
}

func (s *Server) handleListFavorites(c echo.Context) error {
	return c.JSON(http.StatusOK, s.jobs.Favorites(c.Request().Context()))
}

func (s *Server) handleToggleFavorite(c echo.Context) error {
	id, err := postingID(c)
	if err != nil {
		return err
	}
	p, err := s.jobs.ToggleFavorite(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleRemoveFavorite(c echo.Context) error {
	id, err := postingID(c)
	if err != nil {
		return err
	}
	p, err := s.jobs.RemoveFavorite(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleCallEmployer(c echo.Context) error {
	id, err := postingID(c)
	if err != nil {
		return err
	}
	d, err := s.jobs.CallEmployer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) handleBook(c echo.Context) error {
	id, err := postingID(c)
	if err != nil {
		return err
	}
	d, err := s.jobs.Book(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (s *Server) handleGetDialog(c echo.Context) error {
	return c.JSON(http.StatusOK, s.jobs.Dialog(c.Request().Context()))
}

func (s *Server) handleDismissDialog(c echo.Context) error {
	s.jobs.Dismiss(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleIncome(c echo.Context) error {
	balance := s.income.Balance()
	return c.JSON(http.StatusOK, incomeResponse{
		Balance:          balance,
		BalanceFormatted: ledger.FormatAmount(balance),
		Transactions:     s.income.Transactions(),
	})
}

func postingID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid posting id")
	}
	return id, nil
}
