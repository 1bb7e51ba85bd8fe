package httpapi

import (
	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/shopspring/decimal"
)

type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  models.Identity `json:"user"`
}

type profileRequest struct {
	DisplayName *string `json:"display_name" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
}

func (r profileRequest) patch() models.ProfilePatch {
	return models.ProfilePatch{DisplayName: r.DisplayName, Email: r.Email, Phone: r.Phone}
}

type incomeResponse struct {
	Balance          decimal.Decimal      `json:"balance"`
	BalanceFormatted string               `json:"balance_formatted"`
	Transactions     []models.Transaction `json:"transactions"`
}
