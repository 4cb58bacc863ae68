package config

import (
	"errors"
	"fmt"
)

// StrategyType selects which detector(s) the generator runs.
type StrategyType string

const (
	StrategyEMACross    StrategyType = "ema_cross"
	StrategyRSIOversold StrategyType = "rsi_oversold"
	StrategyMACDCross   StrategyType = "macd_cross"
	StrategyMulti       StrategyType = "multi"
)

// VolumeFilter drops signals whose originating candle volume does not
// exceed Threshold times the average volume of the analysed window.
type VolumeFilter struct {
	Enabled   bool    `mapstructure:"enabled"`
	Threshold float64 `mapstructure:"threshold"` // default 1.5
}

// Config holds all tunable parameters for one engine run. A zero value is
// not usable; start from Default() and override.
type Config struct {
	Strategy StrategyType `mapstructure:"strategy"`

	// EMA-cross parameters (also used by the multi strategy).
	FastPeriod int `mapstructure:"fast_period"` // one of 7/25/99
	SlowPeriod int `mapstructure:"slow_period"`

	// RSI-divergence parameters.
	RSIPeriod  int     `mapstructure:"rsi_period"` // 14 or 21
	Overbought float64 `mapstructure:"overbought"` // default 70
	Oversold   float64 `mapstructure:"oversold"`   // default 30

	// Detectors enabled when Strategy == multi. Empty means all three.
	Enabled []StrategyType `mapstructure:"enabled"`

	// Analysis window in days counted back from the newest candle;
	// 0 means the whole series.
	TimeframeDays int `mapstructure:"timeframe_days"`

	Volume VolumeFilter `mapstructure:"volume"`

	InitialCapital float64 `mapstructure:"initial_capital"`
}

// Default returns the parameter set the UI ships with.
func Default() Config {
	return Config{
		Strategy:       StrategyEMACross,
		FastPeriod:     7,
		SlowPeriod:     25,
		RSIPeriod:      14,
		Overbought:     70,
		Oversold:       30,
		Volume:         VolumeFilter{Enabled: false, Threshold: 1.5},
		InitialCapital: 1000,
	}
}

// Validate checks that all fields are within sensible bounds. It returns
// the first encountered error so the caller can surface a clear
// configuration problem before any run starts.
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyEMACross, StrategyRSIOversold, StrategyMACDCross, StrategyMulti:
	default:
		return fmt.Errorf("unknown strategy type %q", c.Strategy)
	}
	if c.FastPeriod <= 0 || c.SlowPeriod <= 0 {
		return errors.New("EMA periods must be positive")
	}
	if c.FastPeriod >= c.SlowPeriod {
		return fmt.Errorf("fast EMA period (%d) must be shorter than slow (%d)", c.FastPeriod, c.SlowPeriod)
	}
	if c.RSIPeriod <= 1 {
		return errors.New("RSIPeriod must be greater than 1")
	}
	if c.Overbought <= c.Oversold {
		return fmt.Errorf("overbought (%f) must be greater than oversold (%f)", c.Overbought, c.Oversold)
	}
	if c.TimeframeDays < 0 {
		return errors.New("TimeframeDays cannot be negative")
	}
	if c.Volume.Enabled && c.Volume.Threshold <= 0 {
		return errors.New("volume filter threshold must be positive")
	}
	if c.InitialCapital <= 0 {
		return errors.New("InitialCapital must be positive")
	}
	for _, e := range c.Enabled {
		switch e {
		case StrategyEMACross, StrategyRSIOversold, StrategyMACDCross:
		default:
			return fmt.Errorf("multi strategy cannot enable %q", e)
		}
	}
	return nil
}
