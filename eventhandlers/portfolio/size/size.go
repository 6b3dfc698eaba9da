package size

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
)

// SizeOrder gives the order the fixed quantity, or liquidates the position
// for an exit
func (s *Fixed) SizeOrder(p common.PortfolioReader, o *order.Order) (*order.Order, error) {
	if p == nil || o == nil {
		return nil, common.ErrNilArguments
	}
	if o.Action == common.Exit {
		return resolveExit(p, o)
	}
	if err := common.CheckTradeable(o.Action); err != nil {
		return nil, err
	}
	q := s.Quantity
	if q <= 0 {
		q = DefaultQuantity
	}
	return o.WithQuantity(q)
}

// SizeOrder buys or sells the whole number of units that fits the
// ticker's share of equity at the current quote
func (s *DollarWeight) SizeOrder(p common.PortfolioReader, o *order.Order) (*order.Order, error) {
	if p == nil || o == nil {
		return nil, common.ErrNilArguments
	}
	if s.Prices == nil {
		return nil, fmt.Errorf("%w price source", common.ErrNilPointer)
	}
	if o.Action == common.Exit {
		return resolveExit(p, o)
	}
	if err := common.CheckTradeable(o.Action); err != nil {
		return nil, err
	}
	weight, err := s.weight(o.Ticker)
	if err != nil {
		return nil, err
	}
	bid, ask, err := s.Prices.BestBidAsk(o.Ticker)
	if err != nil {
		return nil, fmt.Errorf("%s %w", o.Ticker, err)
	}
	price := ask
	if o.Action == common.Sell {
		price = bid
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%s %w", o.Ticker, errNoPrice)
	}
	target := p.GetEquity().Mul(weight).Div(price).Floor()
	if target.IsNegative() {
		target = decimal.Zero
	}
	return o.WithQuantity(target.IntPart())
}

func (s *DollarWeight) weight(ticker string) (decimal.Decimal, error) {
	if w, ok := s.Weights[ticker]; ok {
		if w.IsNegative() {
			return decimal.Zero, fmt.Errorf("%s %w: %v", ticker, errNegativeWeight, w)
		}
		return w, nil
	}
	if len(s.Weights) == 0 {
		return decimal.NewFromInt(1), nil
	}
	return decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(len(s.Weights)))), nil
}

// resolveExit turns an exit into the order that flattens the position.
// A flat position yields a zero quantity order
func resolveExit(p common.PortfolioReader, o *order.Order) (*order.Order, error) {
	held := p.PositionQuantity(o.Ticker)
	switch {
	case held > 0:
		return o.WithAction(common.Sell).WithQuantity(held)
	case held < 0:
		return o.WithAction(common.Buy).WithQuantity(-held)
	}
	return o.WithAction(common.Sell).WithQuantity(0)
}
