package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for ValidationsTotal.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

type Metrics struct {
	ValidationsTotal *prometheus.CounterVec
	YearsRangeServed prometheus.Counter
}

// New registers the date-of-birth metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ValidationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "agegate_validations_total",
			Help: "Date of birth validations by kind (day, month, year, date_of_birth) and outcome",
		}, []string{"kind", "outcome"}),
		YearsRangeServed: f.NewCounter(prometheus.CounterOpts{
			Name: "agegate_years_range_served_total",
			Help: "Total number of birth year lists served",
		}),
	}
}

func (m *Metrics) ObserveValidation(kind string, accepted bool) {
	outcome := OutcomeRejected
	if accepted {
		outcome = OutcomeAccepted
	}
	m.ValidationsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncrementYearsRangeServed() {
	m.YearsRangeServed.Inc()
}
