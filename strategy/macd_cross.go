package strategy

import (
	"math"

	"github.com/evdnx/gobt/indicator"
	"github.com/evdnx/gobt/types"
)

// MACDCross emits a buy when the MACD line crosses above its signal line
// with a positive histogram, and the mirror sell on a cross below with a
// negative histogram. Periods are the conventional 12/26/9.
type MACDCross struct{}

func (MACDCross) Name() string { return "macd_cross" }

func (MACDCross) Detect(candles []types.Candle) []types.Signal {
	points := indicator.MACD(candles)
	if len(points) < 2 {
		return nil
	}

	// points[j] aligns to candle index j + (len(candles) - len(points)).
	offset := len(candles) - len(points)

	var out []types.Signal
	for j := 1; j < len(points); j++ {
		prev, cur := points[j-1], points[j]
		c := candles[offset+j]

		crossUp := prev.MACD <= prev.Signal && cur.MACD > cur.Signal
		crossDown := prev.MACD >= prev.Signal && cur.MACD < cur.Signal

		switch {
		case crossUp && cur.Histogram > 0:
			out = append(out, types.Signal{
				Time:     c.Time,
				Type:     types.Buy,
				Price:    c.Close,
				Reason:   "MACD crossed above signal line",
				Strength: math.Abs(cur.Histogram),
			})
		case crossDown && cur.Histogram < 0:
			out = append(out, types.Signal{
				Time:     c.Time,
				Type:     types.Sell,
				Price:    c.Close,
				Reason:   "MACD crossed below signal line",
				Strength: math.Abs(cur.Histogram),
			})
		}
	}
	return out
}
