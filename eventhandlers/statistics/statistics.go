package statistics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	gctmath "github.com/thrasher-corp/eventbacktester/common/math"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/eventbacktester/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var oneHundred = decimal.NewFromInt(100)

// New returns a Statistic with the default risk free rate of zero
func New() *Statistic {
	return &Statistic{PeriodsPerYear: DefaultPeriodsPerYear}
}

// Reset returns struct to defaults
func (s *Statistic) Reset() {
	s.times = nil
	s.equity = nil
	s.highWaterMark = nil
	s.drawdowns = nil
	s.returns = nil
	s.latest = holdings.Snapshot{}
}

// Update records the portfolio equity at the time of a market event.
// Several market events can share a time, in which case the latest snapshot
// replaces the equity already recorded for that time
func (s *Statistic) Update(tt time.Time, snap holdings.Snapshot) error {
	if len(s.equity) == 0 {
		if !snap.InitialCash.IsPositive() {
			return errInvalidInitialCash
		}
		// the opening point sits a day before the first event
		s.times = append(s.times, tt.AddDate(0, 0, -1))
		s.equity = append(s.equity, snap.InitialCash)
		s.highWaterMark = append(s.highWaterMark, snap.InitialCash)
		s.drawdowns = append(s.drawdowns, decimal.Zero)
		s.returns = append(s.returns, 0)
	} else if !snap.InitialCash.Equal(s.equity[0]) {
		return fmt.Errorf("%w %v != %v", errInitialCashChanged, snap.InitialCash, s.equity[0])
	}

	last := len(s.times) - 1
	switch {
	case last > 0 && tt.Equal(s.times[last]):
		s.truncate(last)
	case last > 0 && tt.Before(s.times[last]):
		return fmt.Errorf("%w %v < %v", errTimeBeforeLatest, tt, s.times[last])
	}
	s.appendPoint(tt, snap.Equity)
	s.latest = snap
	return nil
}

func (s *Statistic) truncate(n int) {
	s.times = s.times[:n]
	s.equity = s.equity[:n]
	s.highWaterMark = s.highWaterMark[:n]
	s.drawdowns = s.drawdowns[:n]
	s.returns = s.returns[:n]
}

func (s *Statistic) appendPoint(tt time.Time, equity decimal.Decimal) {
	prev := s.equity[len(s.equity)-1]
	var ret float64
	if !prev.IsZero() {
		ret = equity.Sub(prev).Div(prev).InexactFloat64()
	}
	hwm := s.highWaterMark[len(s.highWaterMark)-1]
	if equity.GreaterThan(hwm) {
		hwm = equity
	}
	s.times = append(s.times, tt)
	s.equity = append(s.equity, equity)
	s.highWaterMark = append(s.highWaterMark, hwm)
	s.drawdowns = append(s.drawdowns, hwm.Sub(equity))
	s.returns = append(s.returns, ret)
}

// GetResults calculates the performance of the run so far
func (s *Statistic) GetResults() (*Results, error) {
	if len(s.equity) < 2 {
		return nil, errNoData
	}
	periods := s.PeriodsPerYear
	if periods <= 0 {
		periods = DefaultPeriodsPerYear
	}
	initial := s.equity[0]
	final := s.equity[len(s.equity)-1]
	resp := &Results{
		InitialEquity:      initial,
		FinalEquity:        final,
		HighWaterMark:      s.highWaterMark[len(s.highWaterMark)-1],
		RealisedPNL:        s.latest.RealisedPNL,
		UnrealisedPNL:      s.latest.UnrealisedPNL,
		TotalReturnPercent: final.Sub(initial).Div(initial).Mul(oneHundred).InexactFloat64(),
		Equity:             make([]ValueAtTime, len(s.equity)),
		Drawdowns:          make([]ValueAtTime, len(s.drawdowns)),
		Returns:            make([]float64, len(s.returns)),
	}
	copy(resp.Returns, s.returns)

	bottom := 0
	for i := range s.equity {
		resp.Equity[i] = ValueAtTime{Time: s.times[i], Value: s.equity[i]}
		resp.Drawdowns[i] = ValueAtTime{Time: s.times[i], Value: s.drawdowns[i]}
		if s.drawdowns[i].GreaterThan(s.drawdowns[bottom]) {
			bottom = i
		}
	}
	resp.MaxDrawdown = s.drawdowns[bottom]
	if resp.MaxDrawdown.IsPositive() {
		// the high water mark at the worst point is the peak preceding it
		peak := s.highWaterMark[bottom]
		resp.MaxDrawdownPercent = resp.MaxDrawdown.Div(peak).Mul(oneHundred).InexactFloat64()
	}

	var err error
	resp.Sharpe, err = gctmath.CalculateSharpeRatio(s.returns, s.RiskFreeRate, periods)
	if err != nil {
		return nil, fmt.Errorf("sharpe ratio %w", err)
	}
	resp.Sortino, err = gctmath.CalculateSortinoRatio(s.returns, s.RiskFreeRate, periods)
	if err != nil {
		return nil, fmt.Errorf("sortino ratio %w", err)
	}
	resp.CAGR, err = gctmath.CalculateCompoundAnnualGrowthRate(
		initial.InexactFloat64(),
		final.InexactFloat64(),
		periods,
		float64(len(s.equity)))
	if err != nil {
		return nil, fmt.Errorf("cagr %w", err)
	}
	return resp, nil
}

// PrintResults outputs the headline numbers to the log
func (r *Results) PrintResults() {
	if r == nil {
		return
	}
	p := message.NewPrinter(language.English)
	log.Info(log.Statistics, "------------------Results------------------------------------")
	log.Infof(log.Statistics, "Initial equity: %s", p.Sprintf("$%.2f", r.InitialEquity.InexactFloat64()))
	log.Infof(log.Statistics, "Final equity: %s", p.Sprintf("$%.2f", r.FinalEquity.InexactFloat64()))
	log.Infof(log.Statistics, "Realised PNL: %s", p.Sprintf("$%.2f", r.RealisedPNL.InexactFloat64()))
	log.Infof(log.Statistics, "Unrealised PNL: %s", p.Sprintf("$%.2f", r.UnrealisedPNL.InexactFloat64()))
	log.Infof(log.Statistics, "Total return: %.4f%%", r.TotalReturnPercent)
	log.Infof(log.Statistics, "Sharpe ratio: %.4f", r.Sharpe)
	log.Infof(log.Statistics, "Sortino ratio: %.4f", r.Sortino)
	log.Infof(log.Statistics, "Max drawdown: %s (%.4f%%)", p.Sprintf("$%.2f", r.MaxDrawdown.InexactFloat64()), r.MaxDrawdownPercent)
	log.Infof(log.Statistics, "CAGR: %.4f%%", r.CAGR*100)
}
