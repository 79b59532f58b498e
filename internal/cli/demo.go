package cli

import (
	"context"
	"fmt"

	"github.com/sheikh-saqib/account-ledger/internal/ledger"
	"github.com/sheikh-saqib/account-ledger/internal/report"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var depositArg, withdrawArg string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Create an account, deposit, withdraw and print its history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deposit, err := decimal.NewFromString(depositArg)
			if err != nil {
				return fmt.Errorf("invalid --deposit %q: %w", depositArg, err)
			}
			withdraw, err := decimal.NewFromString(withdrawArg)
			if err != nil {
				return fmt.Errorf("invalid --withdraw %q: %w", withdrawArg, err)
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
				if _, err := l.Deposit(ctx, id, deposit); err != nil {
					return fmt.Errorf("deposit: %w", err)
				}
				if _, err := l.Withdrawal(ctx, id, withdraw); err != nil {
					return fmt.Errorf("withdrawal: %w", err)
				}

				history, err := l.History(ctx, id)
				if err != nil {
					return err
				}
				return report.WriteHistory(cmd.OutOrStdout(), history)
			})
		},
	}

	cmd.Flags().StringVar(&depositArg, "deposit", "2000", "amount to deposit")
	cmd.Flags().StringVar(&withdrawArg, "withdraw", "1500", "amount to withdraw")
	return cmd
}
