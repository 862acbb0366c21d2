package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameCacheLookupsTotal = "cache_lookups_total"
	LabelCache            = "cache"
	LabelResult           = "result"

	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameCacheLookupsTotal,
		Help:      "Total lookups of the local caches",
		Namespace: Namespace,
	},
	[]string{LabelCache, LabelResult},
)
