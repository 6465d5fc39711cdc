package httptransport

import (
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	dobhandler "agegate/internal/dob/handler"
	"agegate/internal/platform/health"
	"agegate/pkg/platform/middleware/metadata"
	request "agegate/pkg/platform/middleware/request"
	"agegate/pkg/platform/middleware/requesttime"
	"agegate/pkg/platform/validation"
)

// Deps holds everything the router mounts. DOB and Health are required.
type Deps struct {
	Logger         *slog.Logger
	DOB            *dobhandler.Handler
	Health         *health.Handler
	Metrics        *request.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	MaxBodyBytes   int64
	TrustedProxies []netip.Prefix
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 30 * time.Second
	}
	if d.MaxBodyBytes <= 0 {
		d.MaxBodyBytes = validation.MaxBodySize
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.NewMiddleware(d.TrustedProxies).Handler)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.Metrics, routePattern))
	r.Use(request.Timeout(d.RequestTimeout))
	r.Use(request.BodyLimit(d.MaxBodyBytes))
	r.Use(request.ContentTypeJSON)

	d.Health.Register(r)
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}
	d.DOB.Register(r)

	return r
}

// routePattern labels latency by the matched chi pattern so path parameters
// do not explode metric cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
