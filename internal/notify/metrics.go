package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	outcomeQueued    = "queued"
	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
	outcomeDropped   = "dropped"
)

// Metrics counts what happens to submitted notifications.
type Metrics struct {
	Outcomes   *prometheus.CounterVec
	QueueDepth prometheus.Gauge
}

// NewMetrics registers the dispatcher metrics on reg. A nil reg leaves
// them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zavetisce_notifications_total",
				Help: "Notifications by dispatch outcome",
			},
			[]string{"outcome"},
		),
		QueueDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "zavetisce_notification_queue_depth",
				Help: "Notifications waiting for a worker",
			},
		),
	}
}
