package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/catalogfile"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/services"
)

var seedFile string

// The memory store lives inside the server process and loads CATALOG_FILE on startup.
var errMemorySeed = errors.New("seed needs a persistent store (--driver spanner or postgres); the memory driver loads CATALOG_FILE at startup")

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load products from a YAML catalog into the configured store",
	Example: `  storefrontctl --driver spanner seed --file catalog.yaml
  storefrontctl --driver postgres seed --file catalog.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := catalogfile.LoadFile(seedFile)
		if err != nil {
			return err
		}
		if cfg.StoreDriver == config.DriverMemory {
			return errMemorySeed
		}

		store, err := services.OpenBackend(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Writer().UpsertProducts(cmd.Context(), products); err != nil {
			return fmt.Errorf("failed to upsert products: %w", err)
		}

		logr.Info("catalog seeded", zap.String("store", cfg.StoreDriver), zap.Int("products", len(products)))
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products into %s store\n", len(products), cfg.StoreDriver)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "catalog.yaml", "catalog YAML file")
}
