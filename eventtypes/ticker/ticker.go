package ticker

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

var two = decimal.NewFromInt(2)

// Kind returns MarketKind
func (t *Tick) Kind() common.Kind {
	return common.MarketKind
}

// BidAsk returns the quote
func (t *Tick) BidAsk() (bid, ask decimal.Decimal) {
	return t.Bid, t.Ask
}

// ClosePrice returns the mid price of the quote
func (t *Tick) ClosePrice() decimal.Decimal {
	return t.Bid.Add(t.Ask).Div(two)
}

// Clone returns a copy of the tick
func (t *Tick) Clone() common.DataEventHandler {
	c := *t
	return &c
}

// Spread returns ask minus bid
func (t *Tick) Spread() decimal.Decimal {
	return t.Ask.Sub(t.Bid)
}
