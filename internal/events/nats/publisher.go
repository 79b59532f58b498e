package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
)

// conn is the subset of *nats.Conn the publisher needs
type conn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

type Publisher struct {
	nc conn
}

// NewPublisher connects to the NATS server at url
func NewPublisher(url string, opts ...nats.Option) (*Publisher, error) {
	opts = append([]nats.Option{nats.Name("account-ledger")}, opts...)
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &Publisher{nc: nc}, nil
}

// Publish sends the JSON encoded event on subject. Core NATS publishes are
// fire-and-forget, so ctx is only checked before sending.
func (p *Publisher) Publish(ctx context.Context, subject string, event any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(subject, data)
}

func (p *Publisher) Close() error {
	return p.nc.Drain()
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
