package position

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

var (
	// ErrPositionClosed is returned when trading a position that has returned
	// to zero quantity. Closed positions are history and cannot change
	ErrPositionClosed = errors.New("position is closed")
	errEmptyTicker    = errors.New("ticker cannot be empty")
	errNegativePrice  = errors.New("price cannot be negative")
)

// Position is the lot ledger for a single ticker. All amounts are in the
// quote currency. Quantity is signed, negative while short
type Position struct {
	OrderType         common.Action   `json:"order-type"`
	Ticker            string          `json:"ticker"`
	Quantity          int64           `json:"quantity"`
	Buys              int64           `json:"buys"`
	Sells             int64           `json:"sells"`
	Net               int64           `json:"net"`
	AvgBought         decimal.Decimal `json:"avg-bot"`
	AvgSold           decimal.Decimal `json:"avg-sld"`
	TotalBought       decimal.Decimal `json:"total-bot"`
	TotalSold         decimal.Decimal `json:"total-sld"`
	TotalCommission   decimal.Decimal `json:"total-commission"`
	NetTotal          decimal.Decimal `json:"net-total"`
	NetInclCommission decimal.Decimal `json:"net-incl-commission"`
	AvgPrice          decimal.Decimal `json:"avg-price"`
	Cost              decimal.Decimal `json:"cost"`
	MarketValue       decimal.Decimal `json:"market-value"`
	UnrealisedPNL     decimal.Decimal `json:"unrealised-pnl"`
	RealisedPNL       decimal.Decimal `json:"realised-pnl"`
	Bid               decimal.Decimal `json:"bid"`
	Ask               decimal.Decimal `json:"ask"`
	OpenedAt          time.Time       `json:"opened-at"`
	UpdatedAt         time.Time       `json:"updated-at"`
	ClosedAt          time.Time       `json:"closed-at,omitempty"`

	// costBasisTotal is the commission adjusted spend on the opening side.
	// avg price is derived from it so that repeated re-weighting does not
	// accumulate division error
	costBasisTotal decimal.Decimal
}
