// Package seed provides the fixed tables the core is built from at process
// start: identities, shift postings and the income ledger.
//
// Default returns the built-in tables. Load reads the same shape from a JSON
// file so that an operator can replace them; nothing is ever written back.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/shopspring/decimal"
)

// Data is the complete seed for one process lifetime.
type Data struct {
	Identities   []models.Identity
	Postings     []models.Posting
	Balance      decimal.Decimal
	Transactions []models.Transaction
}

// Default returns a fresh copy of the built-in seed tables.
func Default() Data {
	return Data{
		Identities: []models.Identity{
			{ID: 1, Username: "user1", Secret: "password1", DisplayName: "Александр Копылов",
				Email: "kopylow2004@gmail.com", Phone: "+79523469728", Avatar: "profile_image_user1"},
			{ID: 2, Username: "user2", Secret: "password2", DisplayName: "Арсений",
				Email: "popovaa@mail.ru", Phone: "+79103454546", Avatar: "profile_image_user2"},
		},
		Postings: []models.Posting{
			{ID: 1, Title: "Грузчик(12ч)", Compensation: "1200₽", Employer: "магазин Магнит", Location: "Воронеж", ContactPhone: "+79033555566"},
			{ID: 2, Title: "Кассир(8ч)", Compensation: "2000₽", Employer: "магазин Пятерочка", Location: "Воронеж", ContactPhone: "+791032321354"},
			{ID: 3, Title: "Фасовщик(5ч)", Compensation: "1500₽", Employer: "магазин Перекресток", Location: "Воронеж", ContactPhone: "+79081409538"},
			{ID: 4, Title: "Кассир(12ч)", Compensation: "2200₽", Employer: "магазин Магнит", Location: "Воронеж", ContactPhone: "+7955555555"},
		},
		Balance: decimal.RequireFromString("12345.67"),
		Transactions: []models.Transaction{
			{Description: "Зачисление зарплаты", Amount: decimal.RequireFromString("45000.00"), Date: "01.12.2024"},
			{Description: "Возврат налога", Amount: decimal.RequireFromString("1500.00"), Date: "15.11.2024"},
			{Description: "Бонус от компании", Amount: decimal.RequireFromString("3000.00"), Date: "20.10.2024"},
		},
	}
}

// fileIdentity mirrors models.Identity but keeps the secret, which the
// model hides from JSON output.
type fileIdentity struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Secret      string `json:"secret"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Avatar      string `json:"avatar"`
}

type file struct {
	Identities   []fileIdentity       `json:"identities"`
	Postings     []models.Posting     `json:"postings"`
	Balance      *decimal.Decimal     `json:"balance"`
	Transactions []models.Transaction `json:"transactions"`
}

// Load reads seed tables from a JSON file. An empty path yields Default().
// Sections missing from the file keep their built-in values.
func Load(path string) (Data, error) {
	d := Default()
	if path == "" {
		return d, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}

	var f file
	if err := json.Unmarshal(b, &f); err != nil {
		return Data{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	if f.Identities != nil {
		d.Identities = make([]models.Identity, 0, len(f.Identities))
		for _, fi := range f.Identities {
			d.Identities = append(d.Identities, models.Identity{
				ID:          fi.ID,
				Username:    fi.Username,
				Secret:      fi.Secret,
				DisplayName: fi.DisplayName,
				Email:       fi.Email,
				Phone:       fi.Phone,
				Avatar:      models.AvatarRef(fi.Avatar),
			})
		}
	}
	if f.Postings != nil {
		d.Postings = f.Postings
	}
	if f.Transactions != nil {
		d.Transactions = f.Transactions
	}
	if f.Balance != nil {
		d.Balance = *f.Balance
	}
	return d, nil
}
