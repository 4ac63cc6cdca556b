package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MailMetrics records outbound delivery attempts per pipeline/provider.
type MailMetrics struct {
	duration *prometheus.HistogramVec
	sent     *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewMailMetrics registers the delivery metrics on the provided registerer.
func NewMailMetrics(reg prometheus.Registerer) *MailMetrics {
	if reg == nil {
		return &MailMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mail_delivery_duration_seconds",
		Help:    "Duration of outbound delivery attempts in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"pipeline", "provider"})
	sent := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mail_delivery_sent",
		Help: "Provider-acknowledged deliveries.",
	}, []string{"pipeline", "provider"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mail_delivery_failed",
		Help: "Failed delivery attempts.",
	}, []string{"pipeline", "provider"})
	reg.MustRegister(duration, sent, failed)
	return &MailMetrics{
		duration: duration,
		sent:     sent,
		failed:   failed,
	}
}

// ObserveDuration records the duration for one delivery attempt.
func (m *MailMetrics) ObserveDuration(pipeline, provider string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(pipeline), normalizeLabel(provider)).Observe(duration.Seconds())
}

// IncSent increments the acknowledged-delivery counter.
func (m *MailMetrics) IncSent(pipeline, provider string) {
	if m == nil || m.sent == nil {
		return
	}
	m.sent.WithLabelValues(normalizeLabel(pipeline), normalizeLabel(provider)).Inc()
}

// IncFailed increments the failed-delivery counter.
func (m *MailMetrics) IncFailed(pipeline, provider string) {
	if m == nil || m.failed == nil {
		return
	}
	m.failed.WithLabelValues(normalizeLabel(pipeline), normalizeLabel(provider)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
