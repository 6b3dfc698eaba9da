package holdings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/position"
)

var (
	// ErrPositionExists is returned when opening a position in a ticker that
	// already has one open
	ErrPositionExists = errors.New("position already exists")
	// ErrPositionNotFound is returned when modifying a ticker with no open
	// position
	ErrPositionNotFound = errors.New("position not found")
	// ErrInitialCashNotPositive is returned when setting up a portfolio with no funds
	ErrInitialCashNotPositive = errors.New("initial cash must be greater than zero")

	errEmptyTicker        = errors.New("ticker cannot be empty")
	errNegativeCommission = errors.New("commission cannot be negative")
	errNegativePrice      = errors.New("price cannot be negative")
)

// QuoteSource returns the current bid and ask for a ticker
type QuoteSource interface {
	BestBidAsk(ticker string) (bid, ask decimal.Decimal, err error)
}

// Holdings is the portfolio for a single backtest run. It owns every open
// and closed position along with the cash balance
type Holdings struct {
	InitialCash     decimal.Decimal               `json:"initial-cash"`
	Cash            decimal.Decimal               `json:"cash"`
	Equity          decimal.Decimal               `json:"equity"`
	RealisedPNL     decimal.Decimal               `json:"realised-pnl"`
	UnrealisedPNL   decimal.Decimal               `json:"unrealised-pnl"`
	MarketValue     decimal.Decimal               `json:"market-value"`
	Positions       map[string]*position.Position `json:"positions"`
	ClosedPositions []*position.Position          `json:"closed-positions"`
	quotes          QuoteSource
}

// Snapshot is a point in time copy of the portfolio totals
type Snapshot struct {
	Time            time.Time       `json:"time"`
	InitialCash     decimal.Decimal `json:"initial-cash"`
	Cash            decimal.Decimal `json:"cash"`
	Equity          decimal.Decimal `json:"equity"`
	RealisedPNL     decimal.Decimal `json:"realised-pnl"`
	UnrealisedPNL   decimal.Decimal `json:"unrealised-pnl"`
	MarketValue     decimal.Decimal `json:"market-value"`
	OpenPositions   int             `json:"open-positions"`
	ClosedPositions int             `json:"closed-positions"`
}

// PortfolioError is a recoverable failure to add or modify a position.
// Cash is never changed when one is returned
type PortfolioError struct {
	Operation string
	Ticker    string
	Err       error
}
