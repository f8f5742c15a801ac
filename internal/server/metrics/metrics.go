// Package metrics holds the server's Prometheus counters and the handler
// that exposes them.
package metrics

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docledger"

const (
	OutcomeOK           = "ok"
	OutcomeNotFound     = "not_found"
	OutcomeForbidden    = "forbidden"
	OutcomeUnauthorized = "unauthorized"
	OutcomeConflict     = "conflict"
	OutcomeError        = "error"
	OutcomeSkipped      = "skipped"
)

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	fanout     *prometheus.CounterVec
	backups    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Document store operations by name and outcome.",
		}, []string{"op", "outcome"}),
		fanout: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fanout_copies_total",
			Help:      "Per-recipient copies written by publish and catch-up.",
		}, []string{"outcome"}),
		backups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backups_total",
			Help:      "Backup runs by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.operations,
		m.fanout,
		m.backups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Outcome maps err to a label value.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return OutcomeNotFound
	case errors.Is(err, common.ErrorForbidden):
		return OutcomeForbidden
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return OutcomeUnauthorized
	case errors.Is(err, common.ErrorConflict):
		return OutcomeConflict
	}
	return OutcomeError
}

func (m *Metrics) ObserveOperation(op string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
}

func (m *Metrics) ObserveFanoutCopy(err error) {
	if m == nil {
		return
	}
	m.fanout.WithLabelValues(Outcome(err)).Inc()
}

// ObserveBackup records a finished run, or a skipped one when skipped is set.
func (m *Metrics) ObserveBackup(skipped bool, err error) {
	if m == nil {
		return
	}
	outcome := Outcome(err)
	if skipped {
		outcome = OutcomeSkipped
	}
	m.backups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
