package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/account-ledger/internal/models"
	"github.com/sheikh-saqib/account-ledger/internal/models/events"
	"github.com/shopspring/decimal"
)

// overdraftFloor is the lowest balance a withdrawal may leave behind
var overdraftFloor = decimal.Zero

// Ledger owns all account state.
// It holds a reference to the account store and one mutex per account, so that
// operations on the same account are serialized while unrelated accounts never
// share a lock.
type Ledger struct {
	store    interfaces.AccountStore // sole authority on account existence
	locks    sync.Map                // account id -> *sync.Mutex
	notifier interfaces.EventNotifier
	logger   zerolog.Logger
	now      func() time.Time
}

// Option configures a Ledger
type Option func(*Ledger)

// WithNotifier registers a notifier that receives every committed transaction
func WithNotifier(n interfaces.EventNotifier) Option {
	return func(l *Ledger) {
		l.notifier = n
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithClock overrides the clock used to timestamp accounts and transactions
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// NewLedger creates a Ledger backed by the given store (MemoryAccountStore, etc.)
func NewLedger(store interfaces.AccountStore, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) getAccountLock(accountId string) *sync.Mutex {
	if mu, ok := l.locks.Load(accountId); ok {
		return mu.(*sync.Mutex)
	}
	mu, _ := l.locks.LoadOrStore(accountId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// lockAccount resolves the account and acquires its lock. Locks are only
// created for ids that exist, so unknown ids leave no trace.
func (l *Ledger) lockAccount(ctx context.Context, accountId string) (*models.Account, func(), error) {
	account, err := l.store.GetAccount(ctx, accountId)
	if err != nil {
		return nil, nil, err
	}
	mu := l.getAccountLock(accountId)
	mu.Lock()
	return account, mu.Unlock, nil
}

// CreateAccount allocates a fresh identifier and stores a zero-balance account under it
func (l *Ledger) CreateAccount(ctx context.Context) (string, error) {
	account := models.NewAccount(uuid.NewString(), l.now())

	if err := l.store.SaveAccount(ctx, account); err != nil {
		return "", err
	}

	l.logger.Debug().Str("account_id", account.ID).Msg("account created")
	return account.ID, nil
}

// Deposit adds |amount| to the account balance and records a DEPOSIT transaction.
// The sign of amount is discarded: deposits are always additive.
func (l *Ledger) Deposit(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error) {
	account, unlock, err := l.lockAccount(ctx, accountId)
	if err != nil {
		return decimal.Zero, err
	}
	defer unlock()

	amount = amount.Abs()
	newBalance := account.Balance.Add(amount)

	l.commit(account, models.OperationDeposit, amount, newBalance)
	return newBalance, nil
}

// Withdrawal subtracts |amount| from the account balance and records a
// WITHDRAWAL transaction. If the result would fall below the overdraft floor
// it returns *models.OverdraftError and the account is left unmodified.
func (l *Ledger) Withdrawal(ctx context.Context, accountId string, amount decimal.Decimal) (decimal.Decimal, error) {
	account, unlock, err := l.lockAccount(ctx, accountId)
	if err != nil {
		return decimal.Zero, err
	}
	defer unlock()

	amount = amount.Abs()
	candidate := account.Balance.Sub(amount)
	if candidate.LessThan(overdraftFloor) {
		return decimal.Zero, &models.OverdraftError{Balance: candidate}
	}

	l.commit(account, models.OperationWithdrawal, amount, candidate)
	return candidate, nil
}

// commit writes the new balance and appends the transaction.
// Caller must hold the account lock.
func (l *Ledger) commit(account *models.Account, op models.Operation, amount, newBalance decimal.Decimal) {
	tx := models.Transaction{
		ID:        uuid.NewString(),
		Operation: op,
		Timestamp: l.now(),
		Amount:    amount,
		Balance:   newBalance,
	}

	account.Balance = newBalance
	account.Transactions = append(account.Transactions, tx)

	l.logger.Debug().
		Str("account_id", account.ID).
		Str("operation", op.String()).
		Str("amount", amount.String()).
		Str("balance", newBalance.String()).
		Msg("transaction committed")

	// still under the account lock, so events for one account keep their order
	if l.notifier != nil {
		l.notifier.Notify(events.TransactionCommitted{
			TransactionID: tx.ID,
			AccountID:     account.ID,
			Operation:     op.String(),
			Amount:        amount,
			Balance:       newBalance,
			OccurredAt:    tx.Timestamp,
		})
	}
}

// History returns a copy of the account's transactions in commit order
func (l *Ledger) History(ctx context.Context, accountId string) ([]models.Transaction, error) {
	account, unlock, err := l.lockAccount(ctx, accountId)
	if err != nil {
		return nil, err
	}
	defer unlock()

	history := make([]models.Transaction, len(account.Transactions))
	copy(history, account.Transactions)
	return history, nil
}

func (l *Ledger) GetBalance(ctx context.Context, accountId string) (decimal.Decimal, error) {
	account, unlock, err := l.lockAccount(ctx, accountId)
	if err != nil {
		return decimal.Zero, err
	}
	defer unlock()

	return account.Balance, nil
}

// AccountIDs lists every account created so far, oldest first
func (l *Ledger) AccountIDs(ctx context.Context) ([]string, error) {
	return l.store.AccountIDs(ctx)
}
