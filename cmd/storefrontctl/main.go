// storefrontctl is the operations CLI: schema migrations, catalog seeding,
// development tokens and outbox maintenance.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
)

var (
	cfg    *config.Config
	logr   *zap.Logger
	driver string
)

var rootCmd = &cobra.Command{
	Use:   "storefrontctl",
	Short: "Operations tooling for the storefront service",
	Long: `storefrontctl manages the storefront backends.

Settings come from the environment (and .env) exactly as for the server;
--driver overrides STORE_DRIVER for a single run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if driver != "" {
			os.Setenv("STORE_DRIVER", driver) //nolint:errcheck
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logr, err = logger.New(cfg.IsProduction(), cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logr != nil {
			logr.Sync() //nolint:errcheck
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "store driver override (memory, spanner, postgres)")

	rootCmd.AddCommand(migrateCmd, seedCmd, tokenCmd, outboxCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
