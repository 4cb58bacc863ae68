package backtest

// account tracks compounded capital across trades together with the
// running peak and the worst percentage decline from that peak.
type account struct {
	capital     float64
	peak        float64
	maxDrawdown float64
}

func newAccount(initialCapital float64) *account {
	return &account{capital: initialCapital, peak: initialCapital}
}

// apply books a trade's profit and updates the drawdown watermark.
func (a *account) apply(profit float64) {
	a.capital += profit
	if a.capital > a.peak {
		a.peak = a.capital
		return
	}
	if a.peak > 0 {
		drawdown := (a.peak - a.capital) / a.peak * 100
		if drawdown > a.maxDrawdown {
			a.maxDrawdown = drawdown
		}
	}
}
