package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shahar-caura/triage/internal/config"
	"github.com/shahar-caura/triage/internal/server"
	"github.com/shahar-caura/triage/internal/session"
)

func newServeCmd(logger *slog.Logger, opts *globalOptions) *cobra.Command {
	var port int
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ticket classifier web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, classifier, err := wireClassifier(cfg, logger)
			if err != nil {
				return err
			}
			store := session.NewStore()

			srv := server.New(cfg.Server.Port, version, classifier, store, logger)
			srv.SetBackend(client)

			logger.Info("using model backend", "url", client.BaseURL(), "models", cfg.Catalog().Names())

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.Run(gctx) })

			if _, err := os.Stat(opts.configPath); watch && err == nil {
				g.Go(func() error {
					return config.Watch(gctx, opts.configPath, logger, func(next *config.Config) {
						srv.Reload(next.Catalog(), next.Policies())
					})
				})
			} else if watch && !errors.Is(err, os.ErrNotExist) {
				logger.Warn("config watch disabled", "path", opts.configPath, "err", err)
			}

			g.Go(func() error {
				store.Reap(gctx, time.Minute, cfg.Server.SessionIdle.Duration, func(n int) {
					logger.Info("expired idle sessions", "count", n, "remaining", store.Len())
				})
				return nil
			})

			return g.Wait()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8501, "HTTP server port (overrides server.port)")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the model list when the config file changes")

	return cmd
}
