package memory

import (
	"context" // request-scoped context, unused by the in-memory store
	"sync"    // sync.Map for the accounts, Mutex for the creation order

	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces" // interface AccountStore
	"github.com/sheikh-saqib/account-ledger/internal/models"                // domain models: Account
)

// MemoryAccountStore is an in-memory implementation of interfaces.AccountStore.
// Lookups and inserts go through a sync.Map, so creating an account never
// blocks GetAccount on other accounts. The accounts themselves are guarded by
// the ledger's per-account locks.
type MemoryAccountStore struct {
	accounts sync.Map   // account id -> *models.Account
	orderMu  sync.Mutex // protects order only
	order    []string   // ids in creation order
}

// NewMemoryAccountStore creates and returns an empty MemoryAccountStore
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		order: make([]string, 0),
	}
}

// SaveAccount inserts the account under its ID.
// Implements the AccountStore interface.
func (m *MemoryAccountStore) SaveAccount(ctx context.Context, account *models.Account) error {

	if _, loaded := m.accounts.Swap(account.ID, account); loaded {
		return nil // replaced an existing id, order unchanged
	}

	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	m.order = append(m.order, account.ID)
	return nil // always succeeds in memory
}

// GetAccount returns the stored account or *models.AccountNotFoundError.
// The returned pointer is shared state; callers must hold the account's lock
// before reading or writing its fields.
func (m *MemoryAccountStore) GetAccount(ctx context.Context, accountId string) (*models.Account, error) {

	account, exists := m.accounts.Load(accountId)
	if !exists {
		return nil, &models.AccountNotFoundError{ID: accountId}
	}
	return account.(*models.Account), nil
}

// AccountIDs returns a copy of all account ids in creation order.
func (m *MemoryAccountStore) AccountIDs(ctx context.Context) ([]string, error) {

	m.orderMu.Lock()
	defer m.orderMu.Unlock()

	copied := make([]string, len(m.order))
	copy(copied, m.order) // so external code can't modify internal state
	return copied, nil
}

// Compile-time check: ensure MemoryAccountStore implements AccountStore interface
var _ interfaces.AccountStore = (*MemoryAccountStore)(nil)
