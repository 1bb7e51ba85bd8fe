// Package ledger exposes the read-only income ledger: the current balance
// and the list of past transactions.
package ledger

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/shopspring/decimal"
)

const currencySign = "₽"

type Ledger struct {
	balance      decimal.Decimal
	transactions []models.Transaction
}

func New(balance decimal.Decimal, txs []models.Transaction) *Ledger {
	return &Ledger{balance: balance, transactions: slices.Clone(txs)}
}

func (l *Ledger) Balance() decimal.Decimal {
	return l.balance
}

// Transactions returns the entries in seed order.
func (l *Ledger) Transactions() []models.Transaction {
	return slices.Clone(l.transactions)
}

// FormatAmount renders an amount with two decimals, comma thousand
// separators and the rouble sign, e.g. "₽12,345.67".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + currencySign + b.String() + "." + frac
}
