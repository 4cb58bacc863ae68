package strategy

import (
	"fmt"

	"github.com/evdnx/gobt/indicator"
	"github.com/evdnx/gobt/types"
)

// trendSMAPeriod is the secondary trend reference for divergence checks.
const trendSMAPeriod = 20

// RSIDivergence looks for price/RSI divergence in the oversold and
// overbought zones: a buy when price prints a lower low while the RSI
// prints a higher low below the oversold threshold, and the mirror sell
// above the overbought threshold.
type RSIDivergence struct {
	Period     int
	Overbought float64
	Oversold   float64
}

func (r RSIDivergence) Name() string { return "rsi_oversold" }

func (r RSIDivergence) Detect(candles []types.Candle) []types.Signal {
	if len(candles) < r.Period+trendSMAPeriod {
		return nil
	}

	rsi := indicator.RSI(candles, r.Period)
	sma := indicator.SMA(candles, trendSMAPeriod)

	// rsi[j] aligns to candle index j+Period, sma[j] to j+trendSMAPeriod-1.
	rsiAt := func(i int) (float64, bool) {
		j := i - r.Period
		if j < 0 || j >= len(rsi) {
			return 0, false
		}
		return rsi[j].Value, true
	}
	smaAt := func(i int) (float64, bool) {
		j := i - trendSMAPeriod + 1
		if j < 0 || j >= len(sma) {
			return 0, false
		}
		return sma[j].Value, true
	}

	var out []types.Signal
	for i := 1; i < len(candles); i++ {
		cur, ok := rsiAt(i)
		if !ok {
			continue
		}
		prev, ok := rsiAt(i - 1)
		if !ok {
			continue
		}
		c := candles[i]

		// Trend reference relative to the 20-period SMA. Not applied to
		// the gating below yet.
		// TODO: decide whether the SMA trend should gate divergence entries.
		if trendVal, ok := smaAt(i); ok {
			_ = c.Close > trendVal
		}

		switch {
		case cur < r.Oversold && prev < r.Oversold &&
			c.Low < candles[i-1].Low && cur > prev:
			out = append(out, types.Signal{
				Time:   c.Time,
				Type:   types.Buy,
				Price:  c.Close,
				Reason: fmt.Sprintf("bullish RSI divergence below %.0f", r.Oversold),
			})
		case cur > r.Overbought && prev > r.Overbought &&
			c.High > candles[i-1].High && cur < prev:
			out = append(out, types.Signal{
				Time:   c.Time,
				Type:   types.Sell,
				Price:  c.Close,
				Reason: fmt.Sprintf("bearish RSI divergence above %.0f", r.Overbought),
			})
		}
	}
	return out
}
