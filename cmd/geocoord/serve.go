package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/api"
	"github.com/ihbirlik/geocoord-pro/internal/config"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/bst"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/logger"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store"
	"github.com/ihbirlik/geocoord-pro/internal/pkg/store/xpgx"
	"github.com/ihbirlik/geocoord-pro/internal/service/well"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wellStore, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, err := api.NewAPIService(wellStore,
		well.WithIDProvider(bst.UUIDProvider{}),
		well.WithStageDefaults(config.StageDefaults()),
		well.WithConcurrency(config.RecomputeConcurrency()),
	)
	if err != nil {
		return fmt.Errorf("api.NewAPIService: %w", err)
	}

	addr := viper.GetString(constants.ViperServerAddrKey)
	go svc.Serve(addr)
	logger.Infof(ctx, "listening on %s", addr)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("svc.Shutdown: %w", err)
	}

	logger.Infof(shutdownCtx, "server stopped")
	return nil
}

// openStore builds the configured store and returns a func releasing it.
func openStore(ctx context.Context) (store.Store, func(), error) {
	switch driver := viper.GetString(constants.ViperStorageDriverKey); driver {
	case constants.StorageDriverMemory:
		logger.Warnf(ctx, "using the in-memory store, data is lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	case constants.StorageDriverPostgres:
		pool, err := connectPostgres(ctx)
		if err != nil {
			return nil, nil, err
		}
		return store.NewStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func connectPostgres(ctx context.Context) (*xpgx.Pool, error) {
	pool, err := xpgx.Connect(ctx,
		viper.GetString(constants.ViperPostgresDSNKey),
		uint64(viper.GetInt(constants.ViperPostgresConnectRetriesKey)),
	)
	if err != nil {
		return nil, fmt.Errorf("xpgx.Connect: %w", err)
	}
	return pool, nil
}
