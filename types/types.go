package types

import "sort"

// Side labels the direction of a trading signal.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Candle is a single OHLCV bar. Time is seconds since the Unix epoch.
type Candle struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Signal is one actionable buy/sell event derived from a candle series.
// Strength is optional metadata; most detectors leave it at zero.
type Signal struct {
	Time     int64   `json:"time"`
	Type     Side    `json:"type"`
	Price    float64 `json:"price"`
	Reason   string  `json:"reason"`
	Strength float64 `json:"strength,omitempty"`
}

// Trade pairs one buy signal with the following sell signal.
type Trade struct {
	EntryTime         int64   `json:"entryTime"`
	ExitTime          int64   `json:"exitTime"`
	EntryPrice        float64 `json:"entryPrice"`
	ExitPrice         float64 `json:"exitPrice"`
	Quantity          float64 `json:"quantity"`
	Profit            float64 `json:"profit"`
	ProfitPercentage  float64 `json:"profitPercentage"`
	CapitalAfterTrade float64 `json:"capitalAfterTrade"`
}

// PerformanceStats aggregates a simulated run plus its buy-and-hold
// baseline over the same signal window.
type PerformanceStats struct {
	FinalCapital         float64 `json:"finalCapital"`
	TotalProfit          float64 `json:"totalProfit"`
	ProfitPercentage     float64 `json:"profitPercentage"`
	WinRate              float64 `json:"winRate"`
	TotalTrades          int     `json:"totalTrades"`
	WinningTrades        int     `json:"winningTrades"`
	MaxDrawdown          float64 `json:"maxDrawdown"`
	HoldFinalCapital     float64 `json:"holdFinalCapital"`
	HoldProfitPercentage float64 `json:"holdProfitPercentage"`
	Trades               []Trade `json:"trades"`
}

// Comparison is PerformanceStats plus the head-to-head verdict against
// the passive baseline.
type Comparison struct {
	PerformanceStats
	OutperformsHold bool `json:"outperformsHold"`
}

// SortCandles orders a series by ascending time in place. The sort is
// stable so bars sharing a timestamp keep their relative order.
func SortCandles(candles []Candle) {
	sort.SliceStable(candles, func(i, j int) bool { return candles[i].Time < candles[j].Time })
}

// Normalize returns a copy of the series sorted by time with duplicate
// timestamps collapsed (the last bar for a timestamp wins). Indicator and
// detector code assumes the result: strictly increasing times.
func Normalize(candles []Candle) []Candle {
	if len(candles) == 0 {
		return nil
	}
	out := make([]Candle, len(candles))
	copy(out, candles)
	SortCandles(out)

	dedup := out[:1]
	for _, c := range out[1:] {
		if c.Time == dedup[len(dedup)-1].Time {
			dedup[len(dedup)-1] = c
			continue
		}
		dedup = append(dedup, c)
	}
	return dedup
}
