package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "backoffice"

var (
	// TotalsRecalculations counts totals recalculations by workflow and result
	// (ok, conflict, error).
	TotalsRecalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_totals_recalculations_total",
		Help:      "Quote totals recalculations by workflow and result.",
	}, []string{"workflow", "result"})

	TotalsRecalculationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_totals_recalculation_seconds",
		Help:      "Wall time of a totals recalculation including store round trips.",
		Buckets:   prometheus.DefBuckets,
	})

	TotalsVersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_totals_version_conflicts_total",
		Help:      "Totals upserts rejected because another recalculation won.",
	})

	// ActivityLogWrites counts activity log writes by outcome (primary, fallback, dropped).
	ActivityLogWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_log_writes_total",
		Help:      "Activity log writes by outcome.",
	}, []string{"outcome"})

	ChatConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_connections",
		Help:      "Open chat websocket connections.",
	})

	PaymentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_created_total",
		Help:      "Checkout payments persisted by status.",
	}, []string{"status"})
)
