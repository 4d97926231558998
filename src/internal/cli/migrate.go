package cli

import (
	"errors"
	"fmt"

	"github.com/api-sage/swift-payment-portal/src/internal/adapter/repository/postgres"
	"github.com/api-sage/swift-payment-portal/src/internal/config"
	"github.com/spf13/cobra"
)

func migrateCmd(deps Deps) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations to the Postgres database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageBackend != config.BackendPostgres {
				return errors.New("migrate requires STORAGE_BACKEND=postgres")
			}
			if dir != "" {
				cfg.MigrationsDir = dir
			}

			storage, err := deps.Open(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer storage.Close()

			applied, err := postgres.RunMigrations(cmd.Context(), storage.DB, cfg.MigrationsDir)
			if err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s) from %s\n", applied, cfg.MigrationsDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (defaults to MIGRATIONS_DIR)")

	return cmd
}
