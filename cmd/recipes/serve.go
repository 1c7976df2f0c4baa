package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipes-app-api/api"
	"recipes-app-api/api/handlers"
	"recipes-app-api/pkg/featureflags"

	"github.com/spf13/cobra"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recipe list over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(flags, wiringOptions{})
			if err != nil {
				return err
			}
			defer rt.Close()

			if port != "" {
				rt.cfg.Server.Port = port
			}
			return serve(cmd.Context(), rt)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, rt *runtime) error {
	logger := rt.logger
	logger.Info("Starting Recipes API", map[string]interface{}{
		"port":       rt.cfg.Server.Port,
		"endpoint":   rt.cfg.Recipes.Endpoint,
		"cache_type": rt.cfg.Cache.Type,
		"flags":      rt.flags.GetAllFlags(),
	})

	apiConfig := api.APIConfig{Logger: logger}
	if rt.flags.IsEnabled(ctx, featureflags.RateLimit) {
		apiConfig.RateLimit = rt.cfg.Server.RateLimit
		apiConfig.RateWindow = time.Minute
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	var statusReader handlers.StatusReader
	if rt.recorder != nil {
		statusReader = rt.recorder
	}
	handlers.NewRecipeHandler(rt.controller, statusReader).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + rt.cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: rt.cfg.HTTPTimeoutDuration() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Warm the list so the first GET /state is not idle
	go rt.controller.Load(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("HTTP server error", map[string]interface{}{"error": err.Error()})
			return err
		}
		return nil
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{"error": err.Error()})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}
