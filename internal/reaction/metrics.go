// internal/reaction/metrics.go

package reaction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lovelink_reactions_total",
		Help: "Reactions recorded, by kind",
	}, []string{"kind"})

	duplicateReactionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lovelink_reactions_duplicate_total",
		Help: "Reaction attempts refused because the pair already reacted",
	})
)

func RecordReaction(kind string) {
	reactionsTotal.WithLabelValues(kind).Inc()
}

func RecordDuplicateReaction() {
	duplicateReactionsTotal.Inc()
}
