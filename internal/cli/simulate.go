package cli

import (
	"context"
	"fmt"

	"github.com/sheikh-saqib/account-ledger/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		workers     int
		concurrency int
		amountArg   string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Deposit concurrently into one account and report the final balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountArg)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amountArg, err)
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}

			a, err := opts.newApp(cmd)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), func(ctx context.Context, l *ledger.Ledger) error {
				id, err := l.CreateAccount(ctx)
				if err != nil {
					return err
				}

				g, gctx := errgroup.WithContext(ctx)
				if concurrency > 0 {
					g.SetLimit(concurrency)
				}
				for i := 0; i < workers; i++ {
					g.Go(func() error {
						_, err := l.Deposit(gctx, id, amount)
						return err
					})
				}
				if err := g.Wait(); err != nil {
					return fmt.Errorf("deposit: %w", err)
				}

				balance, err := l.GetBalance(ctx, id)
				if err != nil {
					return err
				}
				history, err := l.History(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "account %s: balance %s after %d transactions\n", id, balance, len(history))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 100, "number of deposits to issue")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum deposits in flight (0 = unlimited)")
	cmd.Flags().StringVar(&amountArg, "amount", "1", "amount of each deposit")
	return cmd
}
