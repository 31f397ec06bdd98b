package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"

	"minifeed/pkg/config"
	"minifeed/pkg/logging"
)

// Counters are the activity counters recorded by the services.
type Counters struct {
	UsersRegistered  metric.Int64Counter
	LoginsFailed     metric.Int64Counter
	PostsCreated     metric.Int64Counter
	CommentsCreated  metric.Int64Counter
	ReactionsCreated metric.Int64Counter
}

// Init installs a meter provider backed by the Prometheus exporter.
// The returned shutdown func flushes and releases the provider.
func Init(cfg *config.TelemetryConfig) (func(), error) {
	if !cfg.MetricsEnabled {
		logging.GetLogger().Info("Metrics disabled")
		return func() {}, nil
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	logging.GetLogger().Info("Prometheus exporter initialized")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := mp.Shutdown(ctx); err != nil {
			logging.GetLogger().Error("Error shutting down telemetry", zap.Error(err))
		}
	}, nil
}

// NewCounters creates the counters on the global meter provider. With no
// provider installed they are no-ops.
func NewCounters() (*Counters, error) {
	meter := otel.Meter("minifeed")
	var (
		c   Counters
		err error
	)
	if c.UsersRegistered, err = meter.Int64Counter("minifeed.users.registered",
		metric.WithDescription("Accounts created")); err != nil {
		return nil, err
	}
	if c.LoginsFailed, err = meter.Int64Counter("minifeed.logins.failed",
		metric.WithDescription("Rejected login attempts")); err != nil {
		return nil, err
	}
	if c.PostsCreated, err = meter.Int64Counter("minifeed.posts.created",
		metric.WithDescription("Posts created")); err != nil {
		return nil, err
	}
	if c.CommentsCreated, err = meter.Int64Counter("minifeed.comments.created",
		metric.WithDescription("Comments created")); err != nil {
		return nil, err
	}
	if c.ReactionsCreated, err = meter.Int64Counter("minifeed.reactions.created",
		metric.WithDescription("Reactions stored, duplicates excluded")); err != nil {
		return nil, err
	}
	return &c, nil
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
