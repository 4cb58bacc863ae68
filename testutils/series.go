package testutils

import "github.com/evdnx/gobt/types"

// BarInterval spaces synthetic candles one minute apart.
const BarInterval int64 = 60

// FlatSeries builds n identical bars: open=close=price, high=price+1,
// low=price-1, constant volume.
func FlatSeries(n int, price, volume float64) []types.Candle {
	out := make([]types.Candle, n)
	for i := range out {
		out[i] = types.Candle{
			Time:   int64(i) * BarInterval,
			Open:   price,
			High:   price + 1,
			Low:    price - 1,
			Close:  price,
			Volume: volume,
		}
	}
	return out
}

// RampSeries builds n bars whose closes step by `step` starting at
// `start`, with each open equal to the previous close.
func RampSeries(n int, start, step, volume float64) []types.Candle {
	out := make([]types.Candle, n)
	prev := start - step
	for i := range out {
		close := start + step*float64(i)
		high, low := close, prev
		if low > high {
			high, low = low, high
		}
		out[i] = types.Candle{
			Time:   int64(i) * BarInterval,
			Open:   prev,
			High:   high + 0.5,
			Low:    low - 0.5,
			Close:  close,
			Volume: volume,
		}
		prev = close
	}
	return out
}
