package position

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

var two = decimal.NewFromInt(2)

// Create opens a position from its first trade and marks it to market
func Create(orderType common.Action, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal, tt time.Time) (*Position, error) {
	if err := common.CheckTradeable(orderType); err != nil {
		return nil, err
	}
	if ticker == "" {
		return nil, errEmptyTicker
	}
	if quantity == 0 {
		return nil, fmt.Errorf("%s %w on open", ticker, common.ErrZeroQuantity)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%s %w: %d", ticker, common.ErrNegativeQuantity, quantity)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%s %w: %v", ticker, errNegativePrice, price)
	}
	p := &Position{
		OrderType:       orderType,
		Ticker:          ticker,
		TotalCommission: commission,
		OpenedAt:        tt,
		UpdatedAt:       tt,
	}
	qty := decimal.NewFromInt(quantity)
	notional := price.Mul(qty)
	switch orderType {
	case common.Buy:
		p.Buys = quantity
		p.AvgBought = price
		p.TotalBought = notional
		p.costBasisTotal = notional.Add(commission)
	case common.Sell:
		p.Sells = quantity
		p.AvgSold = price
		p.TotalSold = notional
		p.costBasisTotal = notional.Sub(commission)
	}
	p.AvgPrice = p.costBasisTotal.Div(qty)
	p.calculateNet()
	if err := p.UpdateValue(bid, ask); err != nil {
		return nil, err
	}
	return p, nil
}

// Trade applies a subsequent fill to the position. Only trades on the
// opening side change the cost basis
func (p *Position) Trade(action common.Action, quantity int64, price, commission decimal.Decimal, tt time.Time) error {
	if err := common.CheckTradeable(action); err != nil {
		return err
	}
	if p.IsClosed() {
		return fmt.Errorf("%s %w", p.Ticker, ErrPositionClosed)
	}
	if quantity <= 0 {
		return fmt.Errorf("%s %w: %d", p.Ticker, common.ErrZeroQuantity, quantity)
	}
	if price.IsNegative() {
		return fmt.Errorf("%s %w: %v", p.Ticker, errNegativePrice, price)
	}
	qty := decimal.NewFromInt(quantity)
	notional := price.Mul(qty)
	p.TotalCommission = p.TotalCommission.Add(commission)
	switch action {
	case common.Buy:
		p.Buys += quantity
		p.TotalBought = p.TotalBought.Add(notional)
		p.AvgBought = p.TotalBought.Div(decimal.NewFromInt(p.Buys))
		if p.OrderType == common.Buy {
			p.costBasisTotal = p.costBasisTotal.Add(notional).Add(commission)
			p.AvgPrice = p.costBasisTotal.Div(decimal.NewFromInt(p.Buys))
		}
	case common.Sell:
		p.Sells += quantity
		p.TotalSold = p.TotalSold.Add(notional)
		p.AvgSold = p.TotalSold.Div(decimal.NewFromInt(p.Sells))
		if p.OrderType == common.Sell {
			p.costBasisTotal = p.costBasisTotal.Add(notional).Sub(commission)
			p.AvgPrice = p.costBasisTotal.Div(decimal.NewFromInt(p.Sells))
		}
	}
	p.UpdatedAt = tt
	p.calculateNet()
	if p.IsClosed() {
		p.ClosedAt = tt
	}
	return nil
}

// UpdateValue marks the position to market at the mid of bid and ask.
// Calling it repeatedly with the same quote leaves the position unchanged
func (p *Position) UpdateValue(bid, ask decimal.Decimal) error {
	if bid.IsNegative() || ask.IsNegative() {
		return fmt.Errorf("%s %w: bid %v ask %v", p.Ticker, errNegativePrice, bid, ask)
	}
	p.Bid = bid
	p.Ask = ask
	mid := bid.Add(ask).Div(two)
	p.MarketValue = decimal.NewFromInt(p.Quantity).Mul(mid)
	p.UnrealisedPNL = p.MarketValue.Sub(p.Cost)
	p.RealisedPNL = p.MarketValue.Add(p.NetInclCommission)
	return nil
}

// IsClosed returns whether the position has been fully unwound
func (p *Position) IsClosed() bool {
	return p.Quantity == 0
}

// OpenQuantity returns the absolute number of units held
func (p *Position) OpenQuantity() int64 {
	if p.Quantity < 0 {
		return -p.Quantity
	}
	return p.Quantity
}

// ClosingAction returns the side that reduces the position
func (p *Position) ClosingAction() common.Action {
	if p.Quantity < 0 {
		return common.Buy
	}
	return common.Sell
}

func (p *Position) calculateNet() {
	p.Net = p.Buys - p.Sells
	p.Quantity = p.Net
	p.NetTotal = p.TotalSold.Sub(p.TotalBought)
	p.NetInclCommission = p.NetTotal.Sub(p.TotalCommission)
	p.Cost = decimal.NewFromInt(p.Quantity).Mul(p.AvgPrice)
}
