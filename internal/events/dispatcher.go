// Package events moves committed transactions from the ledger to an
// EventPublisher without ever blocking the ledger.
package events

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	modelevents "github.com/sheikh-saqib/account-ledger/internal/models/events"
)

const DefaultBufferSize = 1024

// Dispatcher buffers TransactionCommitted events and publishes them from a
// single goroutine (Run). When the buffer is full, events are dropped.
type Dispatcher struct {
	publisher interfaces.EventPublisher
	topic     string
	queue     chan modelevents.TransactionCommitted
	logger    zerolog.Logger
	dropped   atomic.Int64
	failed    atomic.Int64
}

func NewDispatcher(publisher interfaces.EventPublisher, topic string, bufferSize int, logger zerolog.Logger) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if topic == "" {
		topic = modelevents.TopicTransactionCommitted
	}
	return &Dispatcher{
		publisher: publisher,
		topic:     topic,
		queue:     make(chan modelevents.TransactionCommitted, bufferSize),
		logger:    logger,
	}
}

// Notify implements interfaces.EventNotifier
func (d *Dispatcher) Notify(event modelevents.TransactionCommitted) {
	select {
	case d.queue <- event:
	default:
		d.dropped.Add(1)
		d.logger.Warn().
			Str("transaction_id", event.TransactionID).
			Str("account_id", event.AccountID).
			Msg("event buffer full, dropping event")
	}
}

// Run publishes queued events until ctx is cancelled, then flushes whatever
// is still buffered.
func (d *Dispatcher) Run(ctx context.Context) error {
	flushCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			d.drain(flushCtx)
			return nil
		case event := <-d.queue:
			// select picks at random when ctx is already done; flush instead
			if ctx.Err() != nil {
				d.publish(flushCtx, event)
				d.drain(flushCtx)
				return nil
			}
			d.publish(ctx, event)
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case event := <-d.queue:
			d.publish(ctx, event)
		default:
			return
		}
	}
}

func (d *Dispatcher) publish(ctx context.Context, event modelevents.TransactionCommitted) {
	if err := d.publisher.Publish(ctx, d.topic, event); err != nil {
		d.failed.Add(1)
		d.logger.Error().Err(err).
			Str("transaction_id", event.TransactionID).
			Str("topic", d.topic).
			Msg("failed to publish event")
	}
}

// Dropped reports how many events were discarded because the buffer was full
func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Failed reports how many events the publisher rejected
func (d *Dispatcher) Failed() int64 {
	return d.failed.Load()
}

var _ interfaces.EventNotifier = (*Dispatcher)(nil)
