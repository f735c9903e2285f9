package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// psq_share_cache_hits_total
	//
	// counter that measures the number of share derivation cache hits
	//
	// Has the following labels:
	// * operation - the share derivation being memoized
	PSQShareCacheHitsCounterMetricName = "psq_share_cache_hits_total"

	// psq_share_cache_misses_total
	//
	// counter that measures the number of share derivation cache misses
	//
	// Has the following labels:
	// * operation - the share derivation being memoized
	PSQShareCacheMissesCounterMetricName = "psq_share_cache_misses_total"

	// psq_snapshot_fetch_error_total
	//
	// counter that measures the number of errors when fetching account snapshots from the chain
	PSQSnapshotFetchErrorCounterMetricName = "psq_snapshot_fetch_error_total"

	// psq_pool_ingest_error_total
	//
	// counter that measures the number of errors when ingesting pools from the chain
	PSQPoolIngestErrorCounterMetricName = "psq_pool_ingest_error_total"

	PSQShareCacheHitsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: PSQShareCacheHitsCounterMetricName,
			Help: "Total number of share derivation cache hits",
		},
		[]string{"operation"},
	)

	PSQShareCacheMissesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: PSQShareCacheMissesCounterMetricName,
			Help: "Total number of share derivation cache misses",
		},
		[]string{"operation"},
	)

	PSQSnapshotFetchErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: PSQSnapshotFetchErrorCounterMetricName,
			Help: "Total number of errors when fetching account snapshots from the chain",
		},
	)

	PSQPoolIngestErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: PSQPoolIngestErrorCounterMetricName,
			Help: "Total number of errors when ingesting pools from the chain",
		},
	)
)

func init() {
	prometheus.MustRegister(PSQShareCacheHitsCounter)
	prometheus.MustRegister(PSQShareCacheMissesCounter)
	prometheus.MustRegister(PSQSnapshotFetchErrorCounter)
	prometheus.MustRegister(PSQPoolIngestErrorCounter)
}
