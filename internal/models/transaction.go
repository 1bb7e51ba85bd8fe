package models

import "github.com/shopspring/decimal"

// Transaction is a read-only income ledger entry. Date keeps the display
// form of the seed data (DD.MM.YYYY).
type Transaction struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}
