package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL score store schema",
	Long: `Applies the embedded migrations to the PostgreSQL score store.

The database URL is taken from --dsn, then store.dsn when store.driver is postgres,
then the DATABASE_URL environment variable.`,
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", "", "PostgreSQL URL")

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator, _ []string) error {
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		}),
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator, _ []string) error {
			if err := m.Down(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		}),
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.NoArgs,
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator, _ []string) error {
			return printVersion(cmd, m)
		}),
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "force VERSION",
		Short: "Set the migration version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q: %w", args[0], err)
			}
			if err := m.Force(version); err != nil {
				return err
			}
			return printVersion(cmd, m)
		}),
	})

	rootCmd.AddCommand(migrateCmd)
}

// databaseURL resolves the PostgreSQL URL for migrations.
func databaseURL() (string, error) {
	if cfg.Store.Driver == store.DriverPostgres && cfg.Store.DSN != "" {
		return cfg.Store.DSN, nil
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}
	return "", fmt.Errorf("no PostgreSQL URL: set --dsn with store.driver postgres, or DATABASE_URL")
}

func withMigrator(run func(*cobra.Command, *store.Migrator, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// --dsn only makes sense for postgres here.
		if f := cmd.Flags().Lookup("dsn"); f != nil && f.Changed {
			cfg.Store.Driver = store.DriverPostgres
		}
		url, err := databaseURL()
		if err != nil {
			return err
		}
		m, err := store.NewMigrator(url)
		if err != nil {
			return err
		}
		defer func() {
			if err := m.Close(); err != nil {
				log.Warn("failed to close migrator", zap.Error(err))
			}
		}()
		return run(cmd, m, args)
	}
}

func printVersion(cmd *cobra.Command, m *store.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
	return err
}
