package strategy

import (
	"fmt"

	"github.com/evdnx/gobt/indicator"
	"github.com/evdnx/gobt/types"
)

// trendPeriod is the long EMA used as the trend filter for crossovers.
const trendPeriod = 99

// EMACross emits a buy when the fast EMA crosses above the slow EMA while
// price sits above the EMA-99 trend on a bullish candle, and the mirror
// sell on a cross down below the trend on a bearish candle.
type EMACross struct {
	Fast int
	Slow int
}

func (e EMACross) Name() string { return "ema_cross" }

func (e EMACross) Detect(candles []types.Candle) []types.Signal {
	required := e.Slow
	if e.Fast > required {
		required = e.Fast
	}
	if trendPeriod > required {
		required = trendPeriod
	}
	if len(candles) < required {
		return nil
	}

	fast := indicator.EMA(candles, e.Fast)
	slow := indicator.EMA(candles, e.Slow)
	trend := indicator.EMA(candles, trendPeriod)

	var out []types.Signal
	for i := 1; i < len(candles); i++ {
		c := candles[i]
		trendUp := c.Close > trend[i].Value
		crossUp := fast[i-1].Value <= slow[i-1].Value && fast[i].Value > slow[i].Value
		crossDown := fast[i-1].Value >= slow[i-1].Value && fast[i].Value < slow[i].Value

		switch {
		case crossUp && trendUp && c.Close > c.Open:
			out = append(out, types.Signal{
				Time:   c.Time,
				Type:   types.Buy,
				Price:  c.Close,
				Reason: fmt.Sprintf("EMA%d crossed above EMA%d in uptrend", e.Fast, e.Slow),
			})
		case crossDown && !trendUp && c.Close < c.Open:
			out = append(out, types.Signal{
				Time:   c.Time,
				Type:   types.Sell,
				Price:  c.Close,
				Reason: fmt.Sprintf("EMA%d crossed below EMA%d in downtrend", e.Fast, e.Slow),
			})
		}
	}
	return out
}
