package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ridloal/inventory-service/internal/inventory/api"
	"github.com/ridloal/inventory-service/internal/inventory/service"
	"github.com/ridloal/inventory-service/internal/platform/config"
	"github.com/ridloal/inventory-service/internal/platform/logger"
	"github.com/ridloal/inventory-service/internal/platform/metrics"
)

type options struct {
	port        string
	storeDriver string
	dsn         string
	logLevel    string
	logFormat   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serverCfg := config.LoadServerConfig("8085")
	dbCfg := config.LoadInventoryDBConfig()
	logCfg := config.LoadLogConfig()

	opts := options{
		port:        serverCfg.Port,
		storeDriver: dbCfg.Driver,
		dsn:         dbCfg.DSN,
		logLevel:    logCfg.Level,
		logFormat:   logCfg.Format,
	}

	cmd := &cobra.Command{
		Use:          "inventory_service",
		Short:        "Product inventory API with recall filtering",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !config.IsKnownDriver(opts.storeDriver) {
				return fmt.Errorf("unknown store driver %q", opts.storeDriver)
			}
			return run(cmd.Context(), opts, serverCfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.port, "port", opts.port, "listen address, e.g. :8085")
	flags.StringVar(&opts.storeDriver, "store-driver", opts.storeDriver, "pgx, postgres, gorm-postgres, gorm-sqlite or memory (gorm-sqlite creates its tables on start)")
	flags.StringVar(&opts.dsn, "dsn", opts.dsn, "database DSN for the selected store driver")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", opts.logFormat, "json or console")
	return cmd
}

func run(ctx context.Context, opts options, serverCfg config.ServerConfig) error {
	if err := logger.Init(opts.logLevel, opts.logFormat); err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting Inventory Service...", zap.String("store_driver", opts.storeDriver))

	st, err := openStores(config.DBConfig{Driver: opts.storeDriver, DSN: opts.dsn})
	if err != nil {
		logger.Error("Failed to open stores for Inventory Service", err)
		return err
	}
	defer st.Close()

	gin.SetMode(serverCfg.GinMode)
	router := api.NewRouter(api.RouterDeps{
		ProductService: service.NewProductService(st.Inventory, st.Recalls),
		RecallService:  service.NewRecallService(st.Recalls),
		DB:             st.Pinger,
		Metrics:        metrics.New(),
	})

	srv := &http.Server{
		Addr:              opts.port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Inventory Service running", zap.String("addr", opts.port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Failed to run Inventory Service server", err)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down Inventory Service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", err)
		return err
	}
	return nil
}
