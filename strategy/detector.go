// Package strategy turns a candle series into buy/sell signals. Each
// detector is a pure function of the series and its parameters; the
// Generator composes detectors with windowing, volume filtering and
// alternation validation.
package strategy

import (
	"github.com/evdnx/gobt/config"
	"github.com/evdnx/gobt/types"
)

// Detector emits raw signals for one strategy variant. Implementations
// must be pure: same series in, same signals out.
type Detector interface {
	Name() string
	Detect(candles []types.Candle) []types.Signal
}

// FromConfig maps a validated config to its detector variant.
func FromConfig(cfg config.Config) Detector {
	switch cfg.Strategy {
	case config.StrategyRSIOversold:
		return RSIDivergence{Period: cfg.RSIPeriod, Overbought: cfg.Overbought, Oversold: cfg.Oversold}
	case config.StrategyMACDCross:
		return MACDCross{}
	case config.StrategyMulti:
		enabled := cfg.Enabled
		if len(enabled) == 0 {
			enabled = []config.StrategyType{
				config.StrategyEMACross,
				config.StrategyRSIOversold,
				config.StrategyMACDCross,
			}
		}
		m := Multi{}
		for _, e := range enabled {
			sub := cfg
			sub.Strategy = e
			m.Detectors = append(m.Detectors, FromConfig(sub))
		}
		return m
	default:
		return EMACross{Fast: cfg.FastPeriod, Slow: cfg.SlowPeriod}
	}
}

// Multi runs every enabled detector and unions the raw output. Overlaps
// are left for alternation validation to repair.
type Multi struct {
	Detectors []Detector
}

func (m Multi) Name() string { return "multi" }

func (m Multi) Detect(candles []types.Candle) []types.Signal {
	var out []types.Signal
	for _, d := range m.Detectors {
		out = append(out, d.Detect(candles)...)
	}
	return out
}
