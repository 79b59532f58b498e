package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/sheikh-saqib/account-ledger/internal/config"
	"github.com/sheikh-saqib/account-ledger/internal/events"
	"github.com/sheikh-saqib/account-ledger/internal/events/kafka"
	"github.com/sheikh-saqib/account-ledger/internal/events/logpub"
	"github.com/sheikh-saqib/account-ledger/internal/events/nats"
	interfaces "github.com/sheikh-saqib/account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/account-ledger/internal/ledger"
	"github.com/sheikh-saqib/account-ledger/internal/logging"
	"github.com/sheikh-saqib/account-ledger/internal/storage/memory"
	"golang.org/x/sync/errgroup"
)

// app is the composition root: one ledger per process, plus the optional
// event pipeline behind it.
type app struct {
	logger     zerolog.Logger
	ledger     *ledger.Ledger
	publisher  interfaces.EventPublisher
	dispatcher *events.Dispatcher
}

func newApp(cfg *config.Config, logOut io.Writer) (*app, error) {
	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}

	configLog := logging.For(logger, logging.ComponentConfig)
	configLog.Debug().
		Str("events_driver", cfg.Events.Driver).
		Str("events_topic", cfg.Events.Topic).
		Int("events_buffer_size", cfg.Events.BufferSize).
		Str("log_level", cfg.Log.Level).
		Msg("configuration loaded")

	a := &app{logger: logging.For(logger, logging.ComponentCLI), publisher: publisher}

	opts := []ledger.Option{ledger.WithLogger(logging.For(logger, logging.ComponentLedger))}
	if publisher != nil {
		a.dispatcher = events.NewDispatcher(publisher, cfg.Events.Topic, cfg.Events.BufferSize,
			logging.For(logger, logging.ComponentEvents))
		opts = append(opts, ledger.WithNotifier(a.dispatcher))
	}

	a.ledger = ledger.NewLedger(memory.NewMemoryAccountStore(), opts...)
	return a, nil
}

func newPublisher(cfg *config.Config, logger zerolog.Logger) (interfaces.EventPublisher, error) {
	switch cfg.Events.Driver {
	case config.DriverNone:
		return nil, nil
	case config.DriverLog:
		return logpub.NewPublisher(logging.For(logger, logging.ComponentEvents)), nil
	case config.DriverKafka:
		return kafka.NewPublisher(cfg.Kafka.Brokers), nil
	case config.DriverNATS:
		return nats.NewPublisher(cfg.NATS.URL)
	}
	return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
}

// run executes fn against the ledger while the dispatcher publishes in the
// background. Buffered events are flushed and the publisher closed before
// run returns.
func (a *app) run(ctx context.Context, fn func(ctx context.Context, l *ledger.Ledger) error) error {
	dispatchCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	defer stop()

	var g errgroup.Group
	if a.dispatcher != nil {
		g.Go(func() error {
			return a.dispatcher.Run(dispatchCtx)
		})
	}

	err := fn(ctx, a.ledger)

	stop()
	errs := []error{err, g.Wait()}
	if a.publisher != nil {
		errs = append(errs, a.publisher.Close())
	}
	if a.dispatcher != nil {
		a.logger.Debug().
			Int64("dropped", a.dispatcher.Dropped()).
			Int64("failed", a.dispatcher.Failed()).
			Msg("event dispatcher stopped")
	}
	return errors.Join(errs...)
}
