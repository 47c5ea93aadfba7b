package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/pgrepo"
	"github.com/light-bringer/storefront-service/internal/migrate"
	"github.com/light-bringer/storefront-service/migrations"
)

var createInstance bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema to a backend",
}

var migrateSpannerCmd = &cobra.Command{
	Use:   "spanner",
	Short: "Create the Spanner database if needed and apply migrations/spanner",
	Long: `Applies migrations/spanner/*.sql to SPANNER_DATABASE.

Tables and indexes already present are skipped. Against the emulator
(SPANNER_EMULATOR_HOST set) the instance is created as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.SpannerDatabase == "" {
			return errors.New("SPANNER_DATABASE is required")
		}
		path, err := migrate.ParseDatabasePath(cfg.SpannerDatabase)
		if err != nil {
			return err
		}

		m := &migrate.Spanner{
			Path:           path,
			FS:             migrations.FS,
			Dir:            "spanner",
			CreateInstance: createInstance || os.Getenv("SPANNER_EMULATOR_HOST") != "",
			Log:            logr,
		}
		if err := m.Run(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Spanner migrations completed")
		return nil
	},
}

var migratePostgresCmd = &cobra.Command{
	Use:   "postgres",
	Short: "Apply migrations/postgres to DATABASE_URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
		store, err := pgrepo.Open(cmd.Context(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		m := &migrate.Postgres{
			Pool: store.Pool(),
			FS:   migrations.FS,
			Dir:  "postgres",
			Log:  logr,
		}
		if err := m.Run(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Postgres migrations completed")
		return nil
	},
}

func init() {
	migrateSpannerCmd.Flags().BoolVar(&createInstance, "create-instance", false, "create the instance when missing (implied by SPANNER_EMULATOR_HOST)")
	migrateCmd.AddCommand(migrateSpannerCmd, migratePostgresCmd)
}
