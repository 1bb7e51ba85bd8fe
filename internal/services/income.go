package services

import (
	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/shopspring/decimal"
)

// IncomeService is the data source of the income screen.
type IncomeService interface {
	Balance() decimal.Decimal
	Transactions() []models.Transaction
}

func NewIncomeService(core *Core) IncomeService {
	return core.Ledger
}
