package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeError        = "error"
	outcomeUnregistered = "unregistered"
)

var dispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contabot_dispatch_total",
		Help: "Dispatched actions by action type and outcome.",
	},
	[]string{"action", "outcome"},
)
