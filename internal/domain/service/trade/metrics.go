package trade

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var decisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trade_decisions_total",
		Help: "Offer decisions by action and decline reason.",
	},
	[]string{"action", "reason"},
)
