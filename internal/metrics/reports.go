package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameReportsPublishedTotal = "reports_published_total"
	LabelFormat               = "format"
	LabelScheme               = "scheme"
)

var ReportsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameReportsPublishedTotal,
		Help:      "Total reports published to a filesystem backend",
		Namespace: Namespace,
	},
	[]string{LabelFormat, LabelScheme},
)
