package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	walletHD "github.com/MMN3003/lightcone/src/wallet/delivery/http"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// ServeCmd exposes the read-only accessors over HTTP.
func ServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the deployment table and converters over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Env != "dev" {
				gin.SetMode(gin.ReleaseMode)
			}

			// --- Dependencies ---
			svc, err := a.service()
			if err != nil {
				return err
			}
			handler := walletHD.NewHandler(svc, a.log)

			srv := &http.Server{
				Addr:              a.cfg.ListenAddr,
				Handler:           walletHD.NewRouter(handler, a.log),
				ReadTimeout:       5 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       60 * time.Second,
				ReadHeaderTimeout: 2 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Infof("Starting service on %s (env=%s)", a.cfg.ListenAddr, a.cfg.Env)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					a.log.Errorf("Server terminated unexpectedly: %v", err)
					return err
				}
				return nil
			case <-ctx.Done():
				a.log.Infof("Shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}
