// Package metrics exports lifecycle counters to Prometheus.
package metrics

import (
	"database/sql"
	"net/http"

	"servicedesk/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "servicedesk"

// Recorder implements service.Metrics and serves the registry it writes to.
type Recorder struct {
	registry            *prometheus.Registry
	complaintsCreated   *prometheus.CounterVec
	statusTransitions   *prometheus.CounterVec
	notificationsByKind *prometheus.CounterVec
}

var _ service.Metrics = (*Recorder)(nil)

// NewRecorder registers the counters and the Go runtime collectors on a fresh registry.
func NewRecorder() *Recorder {
	return NewRecorderWithRegistry(prometheus.NewRegistry(), true)
}

// NewRecorderWithRegistry registers the counters on registry.
func NewRecorderWithRegistry(registry *prometheus.Registry, withRuntime bool) *Recorder {
	r := &Recorder{
		registry: registry,
		complaintsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complaints_created_total",
			Help:      "Complaints created, by store code.",
		}, []string{"store_code"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Committed complaint status transitions.",
		}, []string{"from", "to"}),
		notificationsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification attempts, by type and final status.",
		}, []string{"type", "status"}),
	}

	registry.MustRegister(r.complaintsCreated, r.statusTransitions, r.notificationsByKind)
	if withRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return r
}

func (r *Recorder) ComplaintCreated(storeCode string) {
	r.complaintsCreated.WithLabelValues(storeCode).Inc()
}

func (r *Recorder) StatusChanged(from, to string) {
	r.statusTransitions.WithLabelValues(from, to).Inc()
}

func (r *Recorder) NotificationDispatched(kind, status string) {
	r.notificationsByKind.WithLabelValues(kind, status).Inc()
}

// ObserveDB exports the connection pool stats of db under the given name.
func (r *Recorder) ObserveDB(db *sql.DB, name string) {
	r.registry.MustRegister(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
