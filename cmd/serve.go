package cmd

import (
	"bloggo/server"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

var flagAddr string

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address, e.g. :8080 (overrides ADDRESS_LISTEN; empty in pro serves AutoTLS on :443)")
	RootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run schema migrations and serve the blog",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if err := cfg.RequireSecret(); err != nil {
		return err
	}

	e, err := server.New(cfg, s)
	if err != nil {
		return err
	}

	e.Logger.Info("Running database schema migrations...")
	if err := s.MigrateUp(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		e.Logger.Info("No database schema migration ran. Database schema already in latest version")
	}

	return server.Start(e, cfg)
}
