package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secure-app-server/core/certs"
	"secure-app-server/core/config"
	"secure-app-server/core/loader"
	"secure-app-server/core/logger"
	"secure-app-server/core/metrics"
	"secure-app-server/core/server"
	"secure-app-server/core/storage"
	"secure-app-server/feature/docs"
	"secure-app-server/feature/echo"
	"secure-app-server/feature/items"
	"secure-app-server/feature/static"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Secure App Server API
// @version 1.0
// @description HTTPS application server with a JSON listing, an echo WebSocket and metrics.
// @BasePath /
// @schemes https

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTPS server",
	Long:  `Loads the TLS credential, binds the configured address and serves every enabled feature until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return err
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load TLS credential
		logg.Info("Loading TLS credential",
			zap.String("cert", cfg.TLS.Cert),
			zap.String("key", cfg.TLS.Key),
		)
		cred, err := certs.Load(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			return err
		}
		if !cred.Describe()[0].ValidAt(time.Now()) {
			logg.Warn("Leaf certificate is not currently valid",
				zap.Time("not_before", cred.Leaf.NotBefore),
				zap.Time("not_after", cred.Leaf.NotAfter),
			)
		}

		// 4. Initialize Storage (bucket source only)
		var store storage.Client
		if cfg.Static.Source == static.SourceBucket {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}

			timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 30 * time.Second
			}
			checkCtx, cancel := context.WithTimeout(cmd.Context(), timeout)
			err = storage.CheckBucket(checkCtx, store, cfg.Storage.Bucket)
			cancel()
			if err != nil {
				return err
			}
			logg.Info("Connected to storage bucket", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Register Features; static stays last as the catch-all
		m := metrics.New(cfg.Metrics)
		mgr := loader.NewManager()
		mgr.Register(
			items.NewFeature(),
			echo.NewFeature(cfg.Server.IdleTimeout, logg),
			m,
			docs.NewFeature(cfg.Server.Docs, cfg.BindAddress()),
			static.NewFeature(cfg.Static, store, cfg.Storage.Bucket, logg),
		)

		// 6. Build Server
		srv, err := server.New(cfg.Server, cfg.BindAddress(), cred.ServerConfig(), m, mgr, logg)
		if err != nil {
			return err
		}

		// 7. Serve until SIGINT/SIGTERM
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
