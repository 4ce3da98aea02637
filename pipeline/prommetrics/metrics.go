// Package prommetrics implements pipeline.Metrics using Prometheus.
// Register it with your metrics handler to expose extraction statistics.
package prommetrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	documents   prometheus.Counter
	emailsFound prometheus.Counter
	phonesFound prometheus.Counter
	extractDur  prometheus.Histogram
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return nil
		}
		return fmt.Errorf("register collector: %w", err)
	}
	return nil
}

// New creates a Metrics instance and registers all collectors with the
// provided registry. Namespace and subsystem are used as prefixes for
// metric names.
//
// Metrics registered:
//   - {namespace}_{subsystem}_documents_total - counter of documents processed
//   - {namespace}_{subsystem}_emails_found_total - counter of email matches
//   - {namespace}_{subsystem}_phone_nums_found_total - counter of phone matches
//   - {namespace}_{subsystem}_extract_duration_seconds - histogram of per-document extraction duration
//
// Returns error if reg is nil or if registration fails (except
// AlreadyRegisteredError).
func New(reg prometheus.Registerer, namespace, subsystem string) (*Metrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	m := &Metrics{
		documents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "documents_total", Help: "Total documents processed",
		}),

		emailsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "emails_found_total", Help: "Total email addresses found",
		}),

		phonesFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "phone_nums_found_total", Help: "Total phone numbers found",
		}),

		extractDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name:    "extract_duration_seconds",
			Help:    "Duration of a single document extraction",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	for _, c := range []prometheus.Collector{m.documents, m.emailsFound, m.phonesFound, m.extractDur} {
		if err := registerCollector(reg, c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) IncDocuments() {
	m.documents.Inc()
}

func (m *Metrics) AddEmailsFound(n int) {
	m.emailsFound.Add(float64(n))
}

func (m *Metrics) AddPhoneNumsFound(n int) {
	m.phonesFound.Add(float64(n))
}

func (m *Metrics) ObserveExtractDuration(d time.Duration) {
	m.extractDur.Observe(d.Seconds())
}
