package cmd

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_posting_app/internal/platform/config"
	"github.com/SscSPs/ledger_posting_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var migrationsPath string

	c := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or revert schema migrations",
		Long:      "Reads PGSQL_URL (and MIGRATIONS_PATH) the same way the API server does.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is not set")
			}
			if migrationsPath == "" {
				migrationsPath = cfg.MigrationsPath
			}

			changed, err := database.Migrate(cfg.DatabaseURL, migrationsPath, database.Direction(args[0]), slog.Default())
			if err != nil {
				return err
			}
			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "migrations %s applied\n", args[0])
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "no change")
			}
			return nil
		},
	}

	c.Flags().StringVar(&migrationsPath, "path", "", "migration source URL (default MIGRATIONS_PATH)")
	return c
}
