package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameAlertsTotal = "alerts_total"
	LabelKind       = "kind"

	AlertKindSuccess = "success"
	AlertKindFailure = "failure"
)

var AlertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameAlertsTotal,
		Help:      "Total alerts shown to the operator",
		Namespace: Namespace,
	},
	[]string{LabelKind},
)
