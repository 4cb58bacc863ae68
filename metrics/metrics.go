package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SignalsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobt_signals_generated_total",
			Help: "Total number of validated signals emitted (by strategy).",
		},
		[]string{"strategy"},
	)

	BacktestsRun = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gobt_backtests_total",
			Help: "Total number of backtest runs.",
		},
	)

	TradesSimulated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gobt_trades_simulated_total",
			Help: "Total number of trades produced by backtest runs.",
		},
	)
)

func init() {
	prometheus.MustRegister(SignalsGenerated, BacktestsRun, TradesSimulated)
}
