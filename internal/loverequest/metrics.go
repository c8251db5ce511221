// internal/loverequest/metrics.go

package loverequest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lovelink_love_requests_sent_total",
		Help: "Love requests created",
	})

	requestsResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lovelink_love_requests_resolved_total",
		Help: "Love requests resolved, by outcome",
	}, []string{"outcome"})

	matchesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lovelink_matches_created_total",
		Help: "Matches created from accepted love requests",
	})
)

func RecordRequestSent() {
	requestsSentTotal.Inc()
}

func RecordRequestResolved(outcome string) {
	requestsResolvedTotal.WithLabelValues(outcome).Inc()
}

func RecordMatchCreated() {
	matchesCreatedTotal.Inc()
}
