package strategy

import (
	"sort"

	"github.com/evdnx/gobt/config"
	"github.com/evdnx/gobt/logger"
	"github.com/evdnx/gobt/metrics"
	"github.com/evdnx/gobt/types"
)

const secondsPerDay = 86400

// Generator runs a configured detector over a candle series and cleans
// the raw output into a strictly alternating buy/sell stream.
type Generator struct {
	cfg config.Config
	det Detector
	log logger.Logger
}

// NewGenerator validates the config and builds the detector variant.
func NewGenerator(cfg config.Config, log logger.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Generator{cfg: cfg, det: FromConfig(cfg), log: log}, nil
}

// Generate produces the validated signal stream for the series. The input
// is normalized (sorted, de-duplicated) and restricted to the configured
// timeframe window before any detector runs.
func (g *Generator) Generate(candles []types.Candle) []types.Signal {
	series := types.Normalize(candles)
	series = filterTimeframe(series, g.cfg.TimeframeDays)

	signals := g.det.Detect(series)
	if g.cfg.Volume.Enabled && len(signals) > 0 {
		signals = filterByVolume(signals, series, g.cfg.Volume.Threshold)
	}

	sort.SliceStable(signals, func(i, j int) bool { return signals[i].Time < signals[j].Time })
	signals = validateAlternation(signals)

	g.log.Info("signals_generated",
		logger.String("strategy", string(g.cfg.Strategy)),
		logger.Int("candles", len(series)),
		logger.Int("signals", len(signals)),
	)
	metrics.SignalsGenerated.WithLabelValues(string(g.cfg.Strategy)).Add(float64(len(signals)))
	return signals
}

// filterTimeframe keeps the candles inside the trailing window of `days`
// days, measured back from the newest candle. days <= 0 keeps everything.
func filterTimeframe(candles []types.Candle, days int) []types.Candle {
	if days <= 0 || len(candles) == 0 {
		return candles
	}
	cutoff := candles[len(candles)-1].Time - int64(days)*secondsPerDay
	i := sort.Search(len(candles), func(i int) bool { return candles[i].Time >= cutoff })
	return candles[i:]
}

// filterByVolume drops signals whose originating candle volume does not
// exceed the series average times the threshold multiplier.
func filterByVolume(signals []types.Signal, candles []types.Candle, threshold float64) []types.Signal {
	if len(candles) == 0 {
		return signals
	}
	var total float64
	volumeAt := make(map[int64]float64, len(candles))
	for _, c := range candles {
		total += c.Volume
		volumeAt[c.Time] = c.Volume
	}
	minVolume := total / float64(len(candles)) * threshold

	out := signals[:0]
	for _, s := range signals {
		if volumeAt[s.Time] > minVolume {
			out = append(out, s)
		}
	}
	return out
}

// validateAlternation enforces the backtester's input contract: the first
// retained signal is a buy and every retained signal differs in type from
// the previous one. Offending signals are dropped, never reordered.
func validateAlternation(signals []types.Signal) []types.Signal {
	var out []types.Signal
	for _, s := range signals {
		if len(out) == 0 {
			if s.Type != types.Buy {
				continue
			}
			out = append(out, s)
			continue
		}
		if s.Type == out[len(out)-1].Type {
			continue
		}
		out = append(out, s)
	}
	return out
}
