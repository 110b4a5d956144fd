package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the postgres tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pool, err := connectPostgres(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := store.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("store.Migrate: %w", err)
		}

		logger.Infof(ctx, "schema is up to date")
		return nil
	},
}
