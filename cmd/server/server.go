package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eslap-workspace/cmd/root"
	"eslap-workspace/controllers"
	"eslap-workspace/internal/config"
	"eslap-workspace/internal/logger"
	"eslap-workspace/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var listenAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the workspace over HTTP",
	Long:  "Serve the workspace API (deployments, services, stamps), /healthz and /metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return startServer(ctx)
	},
}

/**
 * Run the HTTP server until ctx is cancelled
 * @param {context.Context} ctx - Cancelled on SIGINT/SIGTERM
 * @returns {error} Listen errors; a graceful shutdown returns nil
 */
func startServer(ctx context.Context) error {
	cfg := config.App()
	if listenAddr != "" {
		cfg.Server.Address = listenAddr
	}
	gin.SetMode(cfg.Server.Mode)

	ws, err := services.OpenWorkspace(cfg)
	if err != nil {
		return err
	}
	router := controllers.NewRouter(services.NewServer(ws))

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving workspace %s on %s", ws.Root(), cfg.Server.Address)
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

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func init() {
	root.RootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "listen address (default from server.address)")
}
