// internal/chat/metrics.go

package chat

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lovelink_messages_sent_total",
		Help: "Chat messages persisted",
	})

	quotaBlockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lovelink_messages_quota_blocked_total",
		Help: "Sends refused because the free message limit was reached",
	})

	activeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lovelink_ws_active_connections",
		Help: "Open websocket connections",
	})
)

func RecordMessageSent() {
	messagesSentTotal.Inc()
}

func RecordQuotaBlocked() {
	quotaBlockedTotal.Inc()
}

func SetActiveConnections(n int) {
	activeConnections.Set(float64(n))
}
