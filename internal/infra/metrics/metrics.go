package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters exported by the reminder pipeline.
type Metrics struct {
	ChecksTotal         prometheus.Counter
	RemindersSentTotal  prometheus.Counter
	DeliveryErrorsTotal prometheus.Counter
}

// New registers the reminder counters on reg. Tests pass a fresh registry to
// avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "deadline_checks_total",
			Help: "Completed daily deadline evaluations.",
		}),
		RemindersSentTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "reminders_sent_total",
			Help: "Reminder messages delivered to subscribers.",
		}),
		DeliveryErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "delivery_errors_total",
			Help: "Reminder messages that failed to send.",
		}),
	}
}
