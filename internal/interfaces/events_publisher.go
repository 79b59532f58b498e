package interfaces

import (
	"context"

	"github.com/sheikh-saqib/account-ledger/internal/models/events"
)

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// EventNotifier receives committed transactions from the ledger.
// Notify must not block.
type EventNotifier interface {
	Notify(event events.TransactionCommitted)
}
