package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	RootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(true)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all migrations (drops every table)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigration(false)
	},
}

func runMigration(up bool) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	direction := "up"
	if up {
		err = s.MigrateUp()
	} else {
		direction = "down"
		err = s.MigrateDown()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("🤷 No migration ran, schema already up to date")
		return nil
	}
	if err != nil {
		return err
	}

	success("Migrated %s database %s", cfg.DBDriver, direction)
	return nil
}
