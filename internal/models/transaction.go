package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation tags a transaction as a deposit or a withdrawal
type Operation string

const (
	OperationDeposit    Operation = "DEPOSIT"
	OperationWithdrawal Operation = "WITHDRAWAL"
)

func (o Operation) String() string {
	return string(o)
}

// Transaction is an immutable record of one committed deposit or withdrawal
type Transaction struct {
	ID        string          // unique identifier
	Operation Operation       // DEPOSIT or WITHDRAWAL
	Timestamp time.Time       // when the operation was committed
	Amount    decimal.Decimal // magnitude, never negative
	Balance   decimal.Decimal // account balance after this transaction
}
