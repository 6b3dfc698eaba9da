package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
)

const (
	// DefaultPeriodsPerYear is the number of trading days in a year
	DefaultPeriodsPerYear = 252
)

var (
	errNoData             = errors.New("no portfolio snapshots received")
	errTimeBeforeLatest   = errors.New("snapshot time is before the latest recorded time")
	errInvalidInitialCash = errors.New("snapshot initial cash must be greater than zero")
	errInitialCashChanged = errors.New("snapshot initial cash does not match the opening equity")
)

// Handler interface details what a statistic is expected to do
type Handler interface {
	Update(time.Time, holdings.Snapshot) error
	GetResults() (*Results, error)
	Reset()
}

// Statistic tracks the equity curve of a run and the series derived from it.
// The first point is always the opening equity
type Statistic struct {
	RiskFreeRate   float64
	PeriodsPerYear float64
	times          []time.Time
	equity         []decimal.Decimal
	highWaterMark  []decimal.Decimal
	drawdowns      []decimal.Decimal
	returns        []float64
	latest         holdings.Snapshot
}

// ValueAtTime is an equity curve or drawdown point
type ValueAtTime struct {
	Time  time.Time       `json:"time"`
	Value decimal.Decimal `json:"value"`
}

// Results holds the performance of a backtest run. Ratios are annualised
// using the configured periods per year
type Results struct {
	Sharpe             float64         `json:"sharpe"`
	Sortino            float64         `json:"sortino"`
	MaxDrawdown        decimal.Decimal `json:"max_drawdown"`
	MaxDrawdownPercent float64         `json:"max_drawdown_pct"`
	CAGR               float64         `json:"cagr"`
	TotalReturnPercent float64         `json:"total_return_pct"`
	InitialEquity      decimal.Decimal `json:"initial_equity"`
	FinalEquity        decimal.Decimal `json:"final_equity"`
	HighWaterMark      decimal.Decimal `json:"high_water_mark"`
	RealisedPNL        decimal.Decimal `json:"realised_pnl"`
	UnrealisedPNL      decimal.Decimal `json:"unrealised_pnl"`
	Equity             []ValueAtTime   `json:"equity"`
	Drawdowns          []ValueAtTime   `json:"drawdowns"`
	Returns            []float64       `json:"returns"`
}
