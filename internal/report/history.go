// Package report renders account history for humans.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/sheikh-saqib/account-ledger/internal/models"
)

// WriteHistory prints one line per transaction:
//
//	2024-01-02T03:04:05Z: -1500, balance : 500
//
// Withdrawals are shown with a leading minus sign.
func WriteHistory(w io.Writer, transactions []models.Transaction) error {
	for _, tx := range transactions {
		sign := ""
		if tx.Operation == models.OperationWithdrawal {
			sign = "-"
		}
		_, err := fmt.Fprintf(w, "%s: %s%s, balance : %s\n",
			tx.Timestamp.UTC().Format(time.RFC3339), sign, tx.Amount, tx.Balance)
		if err != nil {
			return err
		}
	}
	return nil
}
