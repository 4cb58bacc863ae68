// Package indicator holds pure, batch transforms over a candle series.
// Every function is O(n), touches no shared state and degrades to an
// empty result when the series is shorter than the required history.
package indicator

import "github.com/evdnx/gobt/types"

// Point is one indicator value aligned to the candle it was computed from.
type Point struct {
	Time  int64
	Value float64
}

// MACDPoint carries the three MACD components for one candle.
type MACDPoint struct {
	Time      int64
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD uses the conventional fixed periods.
const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// EMA computes an exponential moving average seeded with the first close.
// It emits one point per input candle, so the first `period` points carry
// the seed bias; trend filters built on top rely on exactly this series.
func EMA(candles []types.Candle, period int) []Point {
	if len(candles) == 0 || period <= 0 {
		return nil
	}
	k := 2.0 / float64(period+1)
	out := make([]Point, len(candles))
	out[0] = Point{Time: candles[0].Time, Value: candles[0].Close}
	for i := 1; i < len(candles); i++ {
		v := candles[i].Close*k + out[i-1].Value*(1-k)
		out[i] = Point{Time: candles[i].Time, Value: v}
	}
	return out
}

// SMA computes a simple trailing mean; the first point is aligned to
// candle index period-1.
func SMA(candles []types.Candle, period int) []Point {
	if period <= 0 || len(candles) < period {
		return nil
	}
	out := make([]Point, 0, len(candles)-period+1)
	var sum float64
	for i, c := range candles {
		sum += c.Close
		if i >= period {
			sum -= candles[i-period].Close
		}
		if i >= period-1 {
			out = append(out, Point{Time: c.Time, Value: sum / float64(period)})
		}
	}
	return out
}

// RSI computes the Wilder relative strength index. The seed averages are
// plain means of the first `period` gains/losses; later bars use Wilder
// smoothing. A zero average loss is defined as RSI 100 rather than a
// division blow-up. Needs at least period+1 candles, otherwise empty.
func RSI(candles []types.Candle, period int) []Point {
	if period <= 0 || len(candles) < period+1 {
		return nil
	}
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := candles[i].Close - candles[i-1].Close
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	out := make([]Point, 0, len(candles)-period)
	out = append(out, Point{Time: candles[period].Time, Value: rsiValue(avgGain, avgLoss)})

	for i := period + 1; i < len(candles); i++ {
		change := candles[i].Close - candles[i-1].Close
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, Point{Time: candles[i].Time, Value: rsiValue(avgGain, avgLoss)})
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}

// MACD computes the 12/26/9 moving average convergence divergence. Points
// start at the slow-period offset; the signal line is an EMA of the MACD
// line seeded with its first value, and the histogram is their difference.
// Needs at least 26 candles, otherwise empty.
func MACD(candles []types.Candle) []MACDPoint {
	if len(candles) < macdSlowPeriod {
		return nil
	}
	fast := EMA(candles, macdFastPeriod)
	slow := EMA(candles, macdSlowPeriod)

	out := make([]MACDPoint, 0, len(candles)-macdSlowPeriod)
	k := 2.0 / float64(macdSignalPeriod+1)
	var signal float64
	for i := macdSlowPeriod; i < len(candles); i++ {
		macd := fast[i].Value - slow[i].Value
		if i == macdSlowPeriod {
			signal = macd
		} else {
			signal = macd*k + signal*(1-k)
		}
		out = append(out, MACDPoint{
			Time:      candles[i].Time,
			MACD:      macd,
			Signal:    signal,
			Histogram: macd - signal,
		})
	}
	return out
}
