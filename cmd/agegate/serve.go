package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	dobhandler "agegate/internal/dob/handler"
	dobmetrics "agegate/internal/dob/metrics"
	"agegate/internal/dob/service"
	"agegate/internal/dob/tracer"
	"agegate/internal/platform/config"
	"agegate/internal/platform/health"
	"agegate/internal/platform/logger"
	httptransport "agegate/internal/transport/http"
	"agegate/pkg/dob"
	request "agegate/pkg/platform/middleware/request"
)

// newSource pins the window when a reference date is configured and otherwise
// follows the calendar day of each request.
func newSource(cfg *config.Config) (service.Source, error) {
	if cfg.DOB.ReferenceDate == "" {
		return service.NewDaily(cfg.Bounds())
	}
	v, err := dob.New(dob.WithReferenceDate(cfg.DOB.ReferenceDate), dob.WithAgeBounds(cfg.Bounds()))
	if err != nil {
		return nil, err
	}
	return service.Fixed(v), nil
}

// newServer wires service, handlers and router. Business logic lives in
// internal/dob; this only assembles it.
func newServer(cfg *config.Config, log *slog.Logger, reg *prometheus.Registry) (*http.Server, error) {
	source, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := service.New(source,
		service.WithLogger(log),
		service.WithMetrics(dobmetrics.New(reg)),
		service.WithTracer(tracer.NewOTel()),
	)
	if err != nil {
		return nil, err
	}

	proxies, err := cfg.TrustedProxies()
	if err != nil {
		return nil, err
	}

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("age_window", func(ctx context.Context) error {
		if svc.ReferenceDate(ctx).IsZero() {
			return errors.New("age window has no reference date")
		}
		return nil
	})
	healthHandler.RegisterInfo("reference_date", func(ctx context.Context) string {
		return svc.ReferenceDate(ctx).Format(time.DateOnly)
	})

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		DOB:            dobhandler.New(svc, log),
		Health:         healthHandler,
		Metrics:        request.NewMetrics(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		TrustedProxies: proxies,
	})

	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.RequestTimeout,
	}, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			log := logger.New(level, cfg.Environment)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv, err := newServer(cfg, log, reg)
			if err != nil {
				return fmt.Errorf("could not build server: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info("starting http server",
					"addr", cfg.HTTP.Addr,
					"environment", cfg.Environment,
					"min_age", cfg.DOB.MinAge,
					"max_age", cfg.DOB.MaxAge,
					"fixed_reference", cfg.DOB.ReferenceDate != "",
				)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info("shutting down server gracefully")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			if err := g.Wait(); err != nil {
				log.Error("server stopped with error", "error", err)
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}
}
