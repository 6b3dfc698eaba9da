package config

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/database"
	"github.com/thrasher-corp/eventbacktester/log"
)

// Sizer types
const (
	FixedSizer        = "fixed"
	DollarWeightSizer = "dollar-weight"
)

// Refiner types
const (
	NaiveRisk  = "naive"
	LimitsRisk = "limits"
)

// Commission types
const (
	IBTieredCommission = "ib-tiered"
	IBFixedCommission  = "ib-fixed"
	TieredCommission   = "tiered"
	FixedCommission    = "fixed"
	ZeroCommission     = "zero"
)

const envPrefix = "BACKTESTER"

var (
	errNoStrategy             = errors.New("no strategy set")
	errInitialCashNotPositive = errors.New("initial cash must be greater than zero")
	errInvalidSizer           = errors.New("invalid sizer")
	errInvalidRisk            = errors.New("invalid risk refiner")
	errMinGreaterThanMax      = errors.New("minimum order quantity is greater than maximum order quantity")
	errNegativeLimit          = errors.New("order limits cannot be negative")
	errNegativeCommission     = errors.New("commission values cannot be negative")
	errInvalidCommission      = errors.New("invalid commission type")
	errNoDataSources          = errors.New("no data sources set")
	errDataSourceIncomplete   = errors.New("data source requires a path and, for bar data, a ticker")
	errNegativeWeight         = errors.New("sizer weights cannot be negative")
	errNilConfig              = errors.New("nil config received")
)

// Config defines what is in an individual backtest config
type Config struct {
	Nickname          string            `json:"nickname" mapstructure:"nickname"`
	Goal              string            `json:"goal" mapstructure:"goal"`
	StrategySettings  StrategySettings  `json:"strategy-settings" mapstructure:"strategy-settings"`
	PortfolioSettings PortfolioSettings `json:"portfolio-settings" mapstructure:"portfolio-settings"`
	ExchangeSettings  ExchangeSettings  `json:"exchange-settings" mapstructure:"exchange-settings"`
	DataSettings      DataSettings      `json:"data-settings" mapstructure:"data-settings"`
	StatisticSettings StatisticSettings `json:"statistic-settings" mapstructure:"statistic-settings"`
	ReportSettings    ReportSettings    `json:"report-settings" mapstructure:"report-settings"`
	DatabaseSettings  database.Config   `json:"database-settings" mapstructure:"database-settings"`
	LogSettings       log.Settings      `json:"log-settings" mapstructure:"log-settings"`
}

// StrategySettings names the strategy and any settings it accepts
type StrategySettings struct {
	Name           string         `json:"name" mapstructure:"name"`
	CustomSettings map[string]any `json:"custom-settings,omitempty" mapstructure:"custom-settings"`
}

// PortfolioSettings sets the starting cash and how signals become orders
type PortfolioSettings struct {
	InitialCash decimal.Decimal `json:"initial-cash" mapstructure:"initial-cash"`
	Sizer       SizerSettings   `json:"sizer" mapstructure:"sizer"`
	Risk        RiskSettings    `json:"risk" mapstructure:"risk"`
}

// SizerSettings selects a sizer. Weights are only used by the dollar weight sizer
type SizerSettings struct {
	Type     string                     `json:"type" mapstructure:"type"`
	Quantity int64                      `json:"quantity" mapstructure:"quantity"`
	Weights  map[string]decimal.Decimal `json:"weights,omitempty" mapstructure:"weights"`
}

// RiskSettings selects a refiner. Limits are only used by the limits refiner
type RiskSettings struct {
	Type                 string          `json:"type" mapstructure:"type"`
	MinimumOrderQuantity int64           `json:"minimum-order-quantity" mapstructure:"minimum-order-quantity"`
	MaximumOrderQuantity int64           `json:"maximum-order-quantity" mapstructure:"maximum-order-quantity"`
	MaximumHoldingRatio  decimal.Decimal `json:"maximum-holding-ratio" mapstructure:"maximum-holding-ratio"`
	CanUseLeverage       bool            `json:"can-use-leverage" mapstructure:"can-use-leverage"`
}

// ExchangeSettings configures the simulated broker
type ExchangeSettings struct {
	Name       string             `json:"name" mapstructure:"name"`
	Commission CommissionSettings `json:"commission" mapstructure:"commission"`
}

// CommissionSettings selects a commission model. The tiered fields are
// only read for the tiered type and Fee only for the fixed type
type CommissionSettings struct {
	Type                string          `json:"type" mapstructure:"type"`
	MinimumFee          decimal.Decimal `json:"minimum-fee" mapstructure:"minimum-fee"`
	RateBelowBreakpoint decimal.Decimal `json:"rate-below-breakpoint" mapstructure:"rate-below-breakpoint"`
	RateAboveBreakpoint decimal.Decimal `json:"rate-above-breakpoint" mapstructure:"rate-above-breakpoint"`
	Breakpoint          int64           `json:"breakpoint" mapstructure:"breakpoint"`
	PerUnit             bool            `json:"per-unit" mapstructure:"per-unit"`
	MaximumNotionalRate decimal.Decimal `json:"maximum-notional-rate" mapstructure:"maximum-notional-rate"`
	Fee                 decimal.Decimal `json:"fee" mapstructure:"fee"`
}

// DataSettings lists the CSV files to replay
type DataSettings struct {
	DataType string       `json:"data-type" mapstructure:"data-type"`
	Sources  []DataSource `json:"sources" mapstructure:"sources"`
}

// DataSource is a single CSV file. Bar files hold one ticker so Ticker is
// required. Tick files may carry a ticker column instead
type DataSource struct {
	Ticker string `json:"ticker" mapstructure:"ticker"`
	Path   string `json:"path" mapstructure:"path"`
}

// StatisticSettings configures the ratio calculations
type StatisticSettings struct {
	RiskFreeRate   float64 `json:"risk-free-rate" mapstructure:"risk-free-rate"`
	PeriodsPerYear float64 `json:"periods-per-year" mapstructure:"periods-per-year"`
}

// ReportSettings controls the files written after a run
type ReportSettings struct {
	GenerateReport bool   `json:"generate-report" mapstructure:"generate-report"`
	OutputPath     string `json:"output-path" mapstructure:"output-path"`
	DarkMode       bool   `json:"dark-mode" mapstructure:"dark-mode"`
}
