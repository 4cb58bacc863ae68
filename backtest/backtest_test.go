package backtest

import (
	"math"
	"testing"

	"github.com/evdnx/gobt/testutils"
	"github.com/evdnx/gobt/types"
)

/*
-----------------------------------------------------------------------
Single round trip: buy 100 -> sell 110 on 1000 starting capital.
-----------------------------------------------------------------------
*/
func TestSingleWinningTrade(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 110},
	})

	if stats.TotalTrades != 1 || stats.WinningTrades != 1 {
		t.Fatalf("expected one winning trade, got %+v", stats)
	}
	trade := stats.Trades[0]
	if trade.Quantity != 10 {
		t.Fatalf("expected quantity 10, got %f", trade.Quantity)
	}
	if trade.Profit != 100 {
		t.Fatalf("expected profit 100, got %f", trade.Profit)
	}
	if stats.FinalCapital != 1100 {
		t.Fatalf("expected final capital 1100, got %f", stats.FinalCapital)
	}
	if stats.WinRate != 100 {
		t.Fatalf("expected win rate 100, got %f", stats.WinRate)
	}
	if stats.MaxDrawdown != 0 {
		t.Fatalf("expected zero drawdown, got %f", stats.MaxDrawdown)
	}
	if stats.TotalProfit != 100 || stats.ProfitPercentage != 10 {
		t.Fatalf("unexpected profit aggregates: %+v", stats)
	}
}

/*
-----------------------------------------------------------------------
Two losing trades: capital compounds down and the drawdown is measured
from the starting peak.
-----------------------------------------------------------------------
*/
func TestLosingTradesDrawdown(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 90},
		{Time: 2, Type: types.Buy, Price: 90},
		{Time: 3, Type: types.Sell, Price: 70},
	})

	if stats.TotalTrades != 2 || stats.WinningTrades != 0 {
		t.Fatalf("expected two losing trades, got %+v", stats)
	}
	first, second := stats.Trades[0], stats.Trades[1]
	if first.Profit != -100 || first.CapitalAfterTrade != 900 {
		t.Fatalf("first trade wrong: %+v", first)
	}
	if second.Quantity != 10 || second.Profit != -200 {
		t.Fatalf("second trade wrong: %+v", second)
	}
	if stats.FinalCapital != 700 {
		t.Fatalf("expected final capital 700, got %f", stats.FinalCapital)
	}
	if math.Abs(stats.MaxDrawdown-30) > 1e-9 {
		t.Fatalf("expected max drawdown 30%%, got %f", stats.MaxDrawdown)
	}
	if stats.WinRate != 0 {
		t.Fatalf("expected win rate 0, got %f", stats.WinRate)
	}
}

// Drawdown is a running maximum: a recovery after the trough must not
// shrink it.
func TestDrawdownIsMonotonic(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 80}, // capital 800, dd 20%
		{Time: 2, Type: types.Buy, Price: 80},
		{Time: 3, Type: types.Sell, Price: 95}, // capital 950, dd stays 20%
	})
	if math.Abs(stats.MaxDrawdown-20) > 1e-9 {
		t.Fatalf("expected max drawdown to stay at 20%%, got %f", stats.MaxDrawdown)
	}
	if stats.FinalCapital != 950 {
		t.Fatalf("expected final capital 950, got %f", stats.FinalCapital)
	}
}

/*
-----------------------------------------------------------------------
Degenerate inputs: empty stream, dangling buy, malformed pairs.
-----------------------------------------------------------------------
*/
func TestEmptySignals(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run(nil)
	if stats.TotalTrades != 0 || stats.WinRate != 0 || stats.MaxDrawdown != 0 || stats.TotalProfit != 0 {
		t.Fatalf("expected zero-valued stats, got %+v", stats)
	}
	if stats.FinalCapital != 1000 {
		t.Fatalf("expected untouched capital, got %f", stats.FinalCapital)
	}
}

func TestDanglingBuyIsNotClosed(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 110},
		{Time: 2, Type: types.Buy, Price: 110}, // never exits
	})
	if stats.TotalTrades != 1 {
		t.Fatalf("expected only the closed round trip, got %d trades", stats.TotalTrades)
	}
	if stats.FinalCapital != 1100 {
		t.Fatalf("expected final capital 1100, got %f", stats.FinalCapital)
	}
}

func TestMalformedPairIsSkipped(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run([]types.Signal{
		{Time: 0, Type: types.Sell, Price: 100}, // not a buy - skipped
		{Time: 1, Type: types.Sell, Price: 110},
		{Time: 2, Type: types.Buy, Price: 100},
		{Time: 3, Type: types.Sell, Price: 105},
	})
	if stats.TotalTrades != 1 {
		t.Fatalf("expected the valid pair only, got %d trades", stats.TotalTrades)
	}
	if stats.Trades[0].EntryTime != 2 {
		t.Fatalf("expected the trade to start at t=2, got %d", stats.Trades[0].EntryTime)
	}
}

/*
-----------------------------------------------------------------------
Buy-and-hold baseline: computed from the first and last signal price.
-----------------------------------------------------------------------
*/
func TestHoldBaseline(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())
	stats := bt.Run([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 110},
		{Time: 2, Type: types.Buy, Price: 105},
		{Time: 3, Type: types.Sell, Price: 120},
	})
	// hold: 100 -> 120 = +20%
	if math.Abs(stats.HoldProfitPercentage-20) > 1e-9 {
		t.Fatalf("expected hold profit 20%%, got %f", stats.HoldProfitPercentage)
	}
	if math.Abs(stats.HoldFinalCapital-1200) > 1e-9 {
		t.Fatalf("expected hold final capital 1200, got %f", stats.HoldFinalCapital)
	}
}

func TestCompareOutperformsHold(t *testing.T) {
	bt := New(1000, testutils.NewMockLogger())

	// Strategy: +10% then +14.3%; hold: 100 -> 120 (+20%).
	cmp := bt.Compare([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 110},
		{Time: 2, Type: types.Buy, Price: 105},
		{Time: 3, Type: types.Sell, Price: 120},
	})
	// 1000 -> 1100 -> 1100*(120-105)/105 ... strategy final = 1257.14 > 1200.
	if !cmp.OutperformsHold {
		t.Fatalf("expected strategy to beat hold: %+v", cmp)
	}

	// Sitting out the first leg of a rising market loses to hold.
	cmp = bt.Compare([]types.Signal{
		{Time: 0, Type: types.Buy, Price: 100},
		{Time: 1, Type: types.Sell, Price: 100},
		{Time: 2, Type: types.Buy, Price: 110},
		{Time: 3, Type: types.Sell, Price: 150},
	})
	if cmp.OutperformsHold {
		t.Fatalf("expected hold to win: %+v", cmp)
	}
}
