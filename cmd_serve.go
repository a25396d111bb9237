package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mvcipher/handlers"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the cipher over HTTP",
	Long: `Starts the HTTP API:
  GET  /api/v1/health          - Health check
  POST /api/v1/cipher/encrypt  - Encrypt an uploaded text file (returns the encrypted file)
  POST /api/v1/cipher/decrypt  - Decrypt an uploaded text file (returns the decrypted file)
  POST /api/v1/cipher/text     - Encrypt or decrypt inline JSON text`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (overrides config and PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	port := cfg.Server.Port
	if servePort != "" {
		port = servePort
	}

	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(cfg, logger)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("port", port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
