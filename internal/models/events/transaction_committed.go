package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicTransactionCommitted is the default topic/subject for TransactionCommitted
const TopicTransactionCommitted = "transaction_committed"

// TransactionCommitted is emitted after a deposit or withdrawal has been applied
type TransactionCommitted struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Operation     string          `json:"operation"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// PartitionKey keeps every event of one account on the same partition
func (e TransactionCommitted) PartitionKey() string {
	return e.AccountID
}
