package cmd

import (
	"bloggo/config"
	"bloggo/store"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagEnv      string
	flagDBDriver string
	flagDBURL    string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "bloggo [command] [flags]",
	Short:         "Bloggo: a small multi-user blog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&flagEnv, "env", "", "environment, dev or pro (overrides ENV)")
	pf.StringVar(&flagDBDriver, "db-driver", "", "database driver, sqlite or postgres (overrides DB_DRIVER)")
	pf.StringVar(&flagDBURL, "db-url", "", "database connection string (overrides DB_URL)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		color.New(color.FgHiRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.FromEnv()
	if flagEnv != "" {
		cfg.Environment = flagEnv
	}
	if flagDBDriver != "" {
		cfg.DBDriver = flagDBDriver
	}
	if flagDBURL != "" {
		cfg.DBURL = flagDBURL
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openStore() (*config.Config, *store.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func success(format string, a ...interface{}) {
	color.New(color.FgHiGreen, color.Bold).Printf("✅ "+format+"\n", a...)
}
