package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type moduleMetrics struct {
	customSessions    prometheus.Gauge
	storeLoadDuration prometheus.Histogram
	storeSaveDuration prometheus.Histogram
	storeWriteErrors  prometheus.Counter

	filterRunsTotal  *prometheus.CounterVec
	catalogReloads   prometheus.Counter
	sessionsCreated  prometheus.Counter
	productsAttached *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	metricsInst *moduleMetrics
	registry    *prometheus.Registry
)

func getMetrics() *moduleMetrics {
	metricsOnce.Do(func() {
		m := &moduleMetrics{
			customSessions: prometheus.NewGauge(
				prometheus.GaugeOpts{
					Name: "custom_sessions",
					Help: "Current number of persisted custom sessions.",
				},
			),
			storeLoadDuration: prometheus.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "session_store_load_duration_seconds",
					Help:    "Session store load duration in seconds.",
					Buckets: prometheus.DefBuckets,
				},
			),
			storeSaveDuration: prometheus.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "session_store_save_duration_seconds",
					Help:    "Session store save duration in seconds.",
					Buckets: prometheus.DefBuckets,
				},
			),
			storeWriteErrors: prometheus.NewCounter(
				prometheus.CounterOpts{
					Name: "session_store_write_errors_total",
					Help: "Total failed session store writes.",
				},
			),
			filterRunsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "filter_runs_total",
					Help: "Total filter evaluations by collection kind.",
				},
				[]string{"kind"},
			),
			catalogReloads: prometheus.NewCounter(
				prometheus.CounterOpts{
					Name: "catalog_reloads_total",
					Help: "Total catalog reloads triggered by dataset changes.",
				},
			),
			sessionsCreated: prometheus.NewCounter(
				prometheus.CounterOpts{
					Name: "sessions_created_total",
					Help: "Total custom sessions appended to the store.",
				},
			),
			productsAttached: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "products_attached_total",
					Help: "Total attach-product operations by outcome.",
				},
				[]string{"outcome"},
			),
		}

		registry = prometheus.NewRegistry()
		registry.MustRegister(
			m.customSessions,
			m.storeLoadDuration,
			m.storeSaveDuration,
			m.storeWriteErrors,
			m.filterRunsTotal,
			m.catalogReloads,
			m.sessionsCreated,
			m.productsAttached,
		)

		metricsInst = m
	})
	return metricsInst
}

// EnsureRegistered forces metric registration. Call once from package
// constructors so metrics exist before the first scrape.
func EnsureRegistered() {
	getMetrics()
}

// Handler exposes the metrics registry for embedding into an HTTP mux.
func Handler() http.Handler {
	getMetrics()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// SetCustomSessions records the current persisted session count.
func SetCustomSessions(n int) {
	getMetrics().customSessions.Set(float64(n))
}

// ObserveStoreLoad records one store load cycle.
func ObserveStoreLoad(d time.Duration) {
	getMetrics().storeLoadDuration.Observe(d.Seconds())
}

// ObserveStoreSave records one store save cycle.
func ObserveStoreSave(d time.Duration) {
	getMetrics().storeSaveDuration.Observe(d.Seconds())
}

// IncStoreWriteError counts a failed persist.
func IncStoreWriteError() {
	getMetrics().storeWriteErrors.Inc()
}

// IncFilterRun counts a filter evaluation over the given collection kind.
func IncFilterRun(kind string) {
	getMetrics().filterRunsTotal.WithLabelValues(kind).Inc()
}

// IncCatalogReload counts a dataset-triggered catalog reload.
func IncCatalogReload() {
	getMetrics().catalogReloads.Inc()
}

// IncSessionCreated counts an appended custom session.
func IncSessionCreated() {
	getMetrics().sessionsCreated.Inc()
}

// IncProductAttached counts an attach operation by outcome
// (success, already_exists, not_found).
func IncProductAttached(outcome string) {
	getMetrics().productsAttached.WithLabelValues(outcome).Inc()
}
