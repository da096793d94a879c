// middleware/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/hemtt/project"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "hemtt"

// Metrics uses its own registry, not prometheus.DefaultRegisterer. A nil
// *Metrics records nothing and Collect passes requests through.
type Metrics struct {
	registry *prometheus.Registry

	loads         *prometheus.CounterVec
	resolvedFiles prometheus.Gauge
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

func ProvideMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "project",
			Name:      "loads_total",
			Help:      "Project configuration loads by result (ok, io, parse, validation).",
		}, []string{"result"}),
		resolvedFiles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "project",
			Name:      "resolved_files",
			Help:      "Number of root files in the last resolved file list.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	m.registry.MustRegister(
		m.loads, m.resolvedFiles, m.requests, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLoad counts one project load, keyed by project.ErrorKind(err).
func (m *Metrics) ObserveLoad(err error) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(project.ErrorKind(err)).Inc()
}

func (m *Metrics) ObserveResolvedFiles(n int) {
	if m == nil {
		return
	}
	m.resolvedFiles.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Collect records request counts and latency. The route label is the chi
// pattern, so it must run inside a chi router.
func (m *Metrics) Collect() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

var Module = fx.Options(
	fx.Provide(ProvideMetrics),
)
