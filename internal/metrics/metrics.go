// Package metrics exposes prometheus counters for yojanasathi.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yojanasathi_chat_turns_total",
			Help: "Total chat turns handled, by resolved intent kind",
		},
		[]string{"kind"},
	)

	CatalogSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yojanasathi_catalog_searches_total",
			Help: "Total catalog filter/search requests served",
		},
	)

	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yojanasathi_recommendations_total",
			Help: "Total recommendation views served",
		},
	)

	ProfileSetupsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yojanasathi_profile_setups_completed_total",
			Help: "Total profile setup wizards completed",
		},
	)
)
