// Package metrics holds the Prometheus collectors of the blocklist service.
//
// A nil *Metrics is valid and records nothing, so components can be built
// without a registry in tests.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blocklist"

type Metrics struct {
	Searches           *prometheus.CounterVec
	QuotaRejections    prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	Contributions      prometheus.Counter
	CacheLookups       *prometheus.CounterVec
	ActivityPruned     prometheus.Counter
}

// New registers the collectors with reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total number of blocklist searches by result",
		}, []string{"result"}),
		QuotaRejections: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_rejections_total",
			Help:      "Total number of searches rejected because the quota was exhausted",
		}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "civil_id_validation_failures_total",
			Help:      "Total number of rejected civil ids by reason",
		}, []string{"reason"}),
		Contributions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributions_total",
			Help:      "Total number of block records added",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Total number of blocklist cache lookups by outcome",
		}, []string{"outcome"}),
		ActivityPruned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_pruned_total",
			Help:      "Total number of expired activity entries deleted",
		}),
	}
}

// ObserveSearch records a completed search. found is the lookup outcome.
func (m *Metrics) ObserveSearch(found bool) {
	if m == nil {
		return
	}
	result := "not_found"
	if found {
		result = "found"
	}
	m.Searches.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementQuotaRejections() {
	if m == nil {
		return
	}
	m.QuotaRejections.Inc()
}

// IncrementValidationFailures counts a rejected civil id; reason is a
// civilid.Reason value.
func (m *Metrics) IncrementValidationFailures(reason string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementContributions() {
	if m == nil {
		return
	}
	m.Contributions.Inc()
}

// ObserveCacheLookup records a cache hit, miss or error.
func (m *Metrics) ObserveCacheLookup(outcome string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddActivityPruned(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ActivityPruned.Add(float64(n))
}
