package cli

import (
	"context"
	"fmt"

	"github.com/sheikh-saqib/account-ledger/internal/config"
	"github.com/spf13/cobra"
)

// rootOptions is shared by every subcommand; cfg is loaded in PersistentPreRunE
type rootOptions struct {
	cfgFile string
	cfg     *config.Config
}

// newApp builds the ledger and its publisher. Subcommands call it only after
// their own flags validated, so a rejected flag never opens a connection.
func (o *rootOptions) newApp(cmd *cobra.Command) (*app, error) {
	return newApp(o.cfg, cmd.ErrOrStderr())
}

// NewRoot creates the ledger command with all subcommands attached
func NewRoot() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "In-memory account ledger",
		Long: "ledger creates accounts, applies deposits and withdrawals and prints " +
			"the resulting transaction history. State lives in memory for the " +
			"lifetime of the command.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./ledger.yaml)")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newSimulateCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	if err := NewRoot().ExecuteContext(ctx); err != nil {
		return fmt.Errorf("error executing root command: %w", err)
	}
	return nil
}
