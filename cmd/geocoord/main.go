package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/config"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "geocoord",
	Short: "geocoord - borehole packer test (BST/Lugeon) backend",
	Long: `geocoord keeps drilling wells, their packer test stages and lithology logs,
and recomputes Lugeon values, flow types and permeability classes on every edit.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return err
		}
		if err := logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetString(constants.ViperLogModeKey)); err != nil {
			return fmt.Errorf("logger.Init: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd, migrateCmd, adminTokenCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
