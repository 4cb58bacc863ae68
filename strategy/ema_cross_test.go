package strategy

import (
	"testing"

	"github.com/evdnx/gobt/testutils"
	"github.com/evdnx/gobt/types"
)

/*
-----------------------------------------------------------------------
Flat market – the fast EMA never strictly crosses the slow EMA, so the
detector must stay silent.
-----------------------------------------------------------------------
*/
func TestEMACrossFlatMarketNoSignals(t *testing.T) {
	det := EMACross{Fast: 7, Slow: 25}
	series := testutils.FlatSeries(120, 100, 1000)
	if sig := det.Detect(series); len(sig) != 0 {
		t.Fatalf("expected no signals on a flat market, got %d", len(sig))
	}
}

/*
-----------------------------------------------------------------------
Cross up in an uptrend on a bullish candle – must emit a buy at the
rally bar's close.
-----------------------------------------------------------------------
*/
func TestEMACrossBuyOnRally(t *testing.T) {
	det := EMACross{Fast: 7, Slow: 25}
	series := declineThenRally(100, 10)

	signals := det.Detect(series)
	if len(signals) == 0 {
		t.Fatal("expected at least one signal")
	}
	last := signals[len(signals)-1]
	if last.Type != types.Buy {
		t.Fatalf("expected the rally to emit a buy, got %s", last.Type)
	}
	if last.Price != 120 {
		t.Fatalf("buy price must be the crossing bar close, got %f", last.Price)
	}
	if last.Time < series[100].Time {
		t.Fatalf("buy fired before the rally started (t=%d)", last.Time)
	}
}

/*
-----------------------------------------------------------------------
Cross down in a downtrend on a bearish candle – must emit a sell.
-----------------------------------------------------------------------
*/
func TestEMACrossSellOnCrash(t *testing.T) {
	det := EMACross{Fast: 7, Slow: 25}
	series := rallyThenCrash(100, 10)

	signals := det.Detect(series)
	if len(signals) == 0 {
		t.Fatal("expected at least one signal")
	}
	last := signals[len(signals)-1]
	if last.Type != types.Sell {
		t.Fatalf("expected the crash to emit a sell, got %s", last.Type)
	}
	if last.Price != 80 {
		t.Fatalf("sell price must be the crossing bar close, got %f", last.Price)
	}
}

func TestEMACrossInsufficientHistory(t *testing.T) {
	det := EMACross{Fast: 7, Slow: 25}
	// Below the trend EMA requirement of 99 bars.
	series := testutils.RampSeries(98, 100, 1, 1000)
	if sig := det.Detect(series); sig != nil {
		t.Fatalf("expected nil below the required history, got %v", sig)
	}
}
