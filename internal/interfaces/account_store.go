package interfaces

import (
	"context"

	"github.com/sheikh-saqib/account-ledger/internal/models"
)

// AccountStore owns the set of accounts. Implementations must be safe for
// concurrent SaveAccount and GetAccount calls.
type AccountStore interface {
	SaveAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, accountId string) (*models.Account, error)
	AccountIDs(ctx context.Context) ([]string, error)
}
