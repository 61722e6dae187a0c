package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DispatchRuns counts dispatch ticks by outcome ("ok", "partial" or "error").
	DispatchRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ads_sync",
		Name:      "dispatch_runs_total",
		Help:      "Dispatch ticks executed, labelled by outcome.",
	}, []string{"outcome"})

	// AccountSyncFailures counts per-account sync failures by stage.
	AccountSyncFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ads_sync",
		Name:      "account_sync_failures_total",
		Help:      "Per-account sync failures, labelled by pipeline stage.",
	}, []string{"stage"})

	// RowsUpserted counts fact and entity rows written, by table.
	RowsUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ads_sync",
		Name:      "rows_upserted_total",
		Help:      "Rows written through idempotent upserts, labelled by table.",
	}, []string{"table"})

	// UpstreamRetries counts backoff retries against the platform API.
	UpstreamRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ads_sync",
		Name:      "upstream_retries_total",
		Help:      "Retries performed against the upstream platform API.",
	})
)
