package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound matches any *AccountNotFoundError via errors.Is
	ErrAccountNotFound = errors.New("account not found")

	// ErrOverdraft matches any *OverdraftError via errors.Is
	ErrOverdraft = errors.New("overdraft")
)

// AccountNotFoundError is returned when an identifier does not resolve to an account
type AccountNotFoundError struct {
	ID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account with id %s not found", e.ID)
}

func (e *AccountNotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}

// OverdraftError is returned when a withdrawal would take the balance below zero.
// Balance is the rejected candidate balance.
type OverdraftError struct {
	Balance decimal.Decimal
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("cannot execute the transaction because the new balance %s exceeds the overdraft", e.Balance)
}

func (e *OverdraftError) Is(target error) bool {
	return target == ErrOverdraft
}
