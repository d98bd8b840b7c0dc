package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/annotator-api/api"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/logger"
	"github.com/killallgit/annotator-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Video Annotation API server with the configured settings.

The database schema is migrated on startup. The server stops gracefully
on SIGINT or SIGTERM.

Example:
  annotator-api serve
  annotator-api serve --port 9090
  annotator-api serve --host 127.0.0.1 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Flags win over config
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase(cfg.Database, true)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcs, err := buildServices(ctx, cfg, db, log)
	if err != nil {
		return err
	}
	defer svcs.Close()

	server := api.NewServer(cfg, &types.Dependencies{
		DB:                db,
		VideoService:      svcs.videos,
		AnnotationService: svcs.annotations,
		Logger:            log,
		Version:           Version,
	})
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	listener, err := net.Listen("tcp", server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr(), err)
	}

	// Channel to receive server errors
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.WithField("addr", listener.Addr().String()).Info("Server is ready to handle requests")

	// Wait for interrupt signal or server error
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case runErr = <-serverErr:
		log.WithError(runErr).Error("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return err
	}

	log.Info("Server gracefully stopped")
	return runErr
}
