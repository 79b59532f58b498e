package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the balance of one account plus its transaction history.
// Fields are mutated by the ledger only, under that account's lock.
type Account struct {
	ID           string
	Balance      decimal.Decimal
	Transactions []Transaction // append-only, chronological
	CreatedAt    time.Time
}

// NewAccount returns an account with a zero balance and no history
func NewAccount(id string, createdAt time.Time) *Account {
	return &Account{
		ID:           id,
		Balance:      decimal.Zero,
		Transactions: make([]Transaction, 0),
		CreatedAt:    createdAt,
	}
}
