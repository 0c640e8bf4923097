package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/NethermindEth/starknet-api/clients/feeder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRegistry returns a registry that already carries the build and runtime
// collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewBuildInfoCollector())
	registry.MustRegister(collectors.NewGoCollector())
	return registry
}

// Handler exposes the metrics gathered by registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// NewFeederListener returns a feeder listener that counts responses and
// records their latency, labelled by endpoint path and HTTP status.
func NewFeederListener(reg prometheus.Registerer) feeder.EventListener {
	responses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feeder",
		Subsystem: "client",
		Name:      "responses_total",
		Help:      "Feeder gateway responses by endpoint and HTTP status.",
	}, []string{"method", "status"})
	requestLatencies := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "feeder",
		Subsystem: "client",
		Name:      "request_latency",
		Help:      "Feeder gateway request latency in seconds.",
	}, []string{"method", "status"})
	reg.MustRegister(responses, requestLatencies)

	return &feeder.SelectiveListener{
		OnResponseCb: func(urlPath string, status int, took time.Duration) {
			statusString := strconv.FormatInt(int64(status), 10)
			responses.WithLabelValues(urlPath, statusString).Inc()
			requestLatencies.WithLabelValues(urlPath, statusString).Observe(took.Seconds())
		},
	}
}
