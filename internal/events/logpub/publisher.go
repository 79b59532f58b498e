// Package logpub publishes events to the structured log. It is the default
// publisher when no broker is configured.
package logpub

import (
	"context"

	"github.com/rs/zerolog"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
)

type Publisher struct {
	logger zerolog.Logger
}

func NewPublisher(logger zerolog.Logger) *Publisher {
	return &Publisher{logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	p.logger.Info().Str("topic", topic).Interface("event", event).Msg("event published")
	return nil
}

func (p *Publisher) Close() error {
	return nil
}

var _ interfaces.EventPublisher = (*Publisher)(nil)
