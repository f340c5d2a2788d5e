package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/erazemk/zavetisce/internal/api"
	"github.com/erazemk/zavetisce/internal/auth"
	"github.com/erazemk/zavetisce/internal/notify"
	"github.com/erazemk/zavetisce/internal/rescue"
)

func newServeCmd(load func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API and the notification dispatcher.

An empty database is initialized with an Admin account on first run.
SIGINT or SIGTERM stops the server, then gives queued notifications
the configured grace period before dropping them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := load()
			if err != nil {
				return err
			}
			defer e.cleanup()
			if err := runServe(cmd, e); err != nil {
				e.log.Error("server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
}

func runServe(cmd *cobra.Command, e *env) error {
	cfg, log := e.cfg, e.log

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := openDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer database.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	dispatcher := notify.New(
		notify.StoreSink{DB: database, Now: time.Now, NewID: uuid.NewString},
		notify.Options{
			QueueSize: cfg.Notify.QueueSize,
			Workers:   cfg.Notify.Workers,
			Grace:     cfg.Notify.Grace,
		},
		log,
		notify.NewMetrics(reg),
	)

	svc := rescue.New(database, dispatcher, rescue.WithLogger(log.Named("rescue")))

	admin, created, err := svc.EnsureAdmin(ctx, cfg.Admin.Email)
	if err != nil {
		dispatcher.Shutdown(context.Background())
		return err
	}
	if created {
		printInitResult(cmd.OutOrStdout(), cfg, admin)
	}

	secret, err := svc.SigningSecret(ctx)
	if err != nil {
		dispatcher.Shutdown(context.Background())
		return err
	}

	server := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: api.NewRouter(api.Options{
			Service:  svc,
			Issuer:   auth.NewIssuer(secret, cfg.Auth.TokenTTL),
			Logger:   log.Named("http"),
			Gatherer: reg,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}

		dropped := dispatcher.Shutdown(context.Background())
		log.Info("notification dispatcher stopped", zap.Int("dropped", dropped))
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped, closing database")
	return nil
}
