package strategy

import (
	"github.com/evdnx/gobt/types"
)

// declineThenRally builds a long mild downtrend followed by a hard rally,
// which forces the fast EMA below the slow EMA and then back above it
// while price jumps over the long trend EMA.
func declineThenRally(declineBars, rallyBars int) []types.Candle {
	var out []types.Candle
	prev := 100.0
	for i := 0; i < declineBars; i++ {
		close := 100 - 0.05*float64(i)
		out = append(out, bar(int64(i), prev, close, 1000))
		prev = close
	}
	for i := 0; i < rallyBars; i++ {
		out = append(out, bar(int64(declineBars+i), prev, 120, 1000))
		prev = 120
	}
	return out
}

// rallyThenCrash is the mirror image: a mild uptrend followed by a slump.
func rallyThenCrash(riseBars, crashBars int) []types.Candle {
	var out []types.Candle
	prev := 100.0
	for i := 0; i < riseBars; i++ {
		close := 100 + 0.05*float64(i)
		out = append(out, bar(int64(i), prev, close, 1000))
		prev = close
	}
	for i := 0; i < crashBars; i++ {
		out = append(out, bar(int64(riseBars+i), prev, 80, 1000))
		prev = 80
	}
	return out
}

// bar builds one candle with high/low hugging the open/close range.
func bar(i int64, open, close, volume float64) types.Candle {
	high, low := open, close
	if high < low {
		high, low = low, high
	}
	return types.Candle{
		Time:   i * 60,
		Open:   open,
		High:   high + 0.5,
		Low:    low - 0.5,
		Close:  close,
		Volume: volume,
	}
}

// assertAlternating reports whether the stream strictly alternates
// buy/sell starting with a buy.
func assertAlternating(signals []types.Signal) bool {
	for i, s := range signals {
		if i == 0 {
			if s.Type != types.Buy {
				return false
			}
			continue
		}
		if s.Type == signals[i-1].Type {
			return false
		}
	}
	return true
}
