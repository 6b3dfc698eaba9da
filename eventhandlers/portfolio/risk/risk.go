package risk

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
	"github.com/thrasher-corp/eventbacktester/log"
)

// RefineOrders returns the order as-is, dropping it if it has no quantity
func (n *Naive) RefineOrders(_ common.PortfolioReader, o *order.Order) ([]*order.Order, error) {
	if o == nil {
		return nil, common.ErrNilEvent
	}
	if o.Quantity == 0 {
		return nil, nil
	}
	return []*order.Order{o}, nil
}

// Validate checks that the limits make sense together
func (l *Limits) Validate() error {
	if l.MinimumOrderQuantity < 0 || l.MaximumOrderQuantity < 0 || l.MaximumHoldingRatio.IsNegative() {
		return errNegativeLimit
	}
	if l.MaximumOrderQuantity > 0 && l.MinimumOrderQuantity > l.MaximumOrderQuantity {
		return fmt.Errorf("%w: %d > %d", errMinGreaterThanMax, l.MinimumOrderQuantity, l.MaximumOrderQuantity)
	}
	return nil
}

// RefineOrders vetoes orders that are too small, unaffordable or too
// concentrated, then splits what is left into chunks no larger than the
// maximum order quantity. Orders that only reduce an open position are
// never vetoed so that an exit can always liquidate. Each chunk of a split
// order gets its own ID
func (l *Limits) RefineOrders(p common.PortfolioReader, o *order.Order) ([]*order.Order, error) {
	if p == nil || o == nil {
		return nil, common.ErrNilArguments
	}
	if o.Quantity == 0 {
		return nil, nil
	}
	if err := common.CheckTradeable(o.Action); err != nil {
		return nil, err
	}
	if !reducesPosition(p, o) {
		if l.MinimumOrderQuantity > 0 && o.Quantity < l.MinimumOrderQuantity {
			log.Debugf(log.Portfolio, "%v %v order of %v vetoed, below minimum of %v", o.Ticker, o.Action, o.Quantity, l.MinimumOrderQuantity)
			return nil, nil
		}
		if o.Action == common.Buy && (!l.CanUseLeverage || l.MaximumHoldingRatio.IsPositive()) {
			vetoed, err := l.vetoBuy(p, o)
			if err != nil || vetoed {
				return nil, err
			}
		}
	}
	if l.MaximumOrderQuantity <= 0 || o.Quantity <= l.MaximumOrderQuantity {
		return []*order.Order{o}, nil
	}
	var resp []*order.Order
	for remaining := o.Quantity; remaining > 0; remaining -= l.MaximumOrderQuantity {
		q := remaining
		if q > l.MaximumOrderQuantity {
			q = l.MaximumOrderQuantity
		}
		chunk, err := o.WithQuantity(q)
		if err != nil {
			return nil, err
		}
		if chunk.ID, err = uuid.NewV4(); err != nil {
			return nil, err
		}
		resp = append(resp, chunk)
	}
	return resp, nil
}

// reducesPosition returns whether the order trades against an open position
// without taking it through zero
func reducesPosition(p common.PortfolioReader, o *order.Order) bool {
	held := p.PositionQuantity(o.Ticker)
	switch o.Action {
	case common.Buy:
		return held < 0 && o.Quantity <= -held
	case common.Sell:
		return held > 0 && o.Quantity <= held
	}
	return false
}

func (l *Limits) vetoBuy(p common.PortfolioReader, o *order.Order) (bool, error) {
	if l.Prices == nil {
		return false, fmt.Errorf("%w price source", common.ErrNilPointer)
	}
	_, ask, err := l.Prices.BestBidAsk(o.Ticker)
	if err != nil {
		return false, fmt.Errorf("%s %w", o.Ticker, err)
	}
	cost := ask.Mul(decimal.NewFromInt(o.Quantity))
	if !l.CanUseLeverage && cost.GreaterThan(p.GetCash()) {
		log.Debugf(log.Portfolio, "%v buy of %v vetoed, costs %v with %v cash available", o.Ticker, o.Quantity, cost, p.GetCash())
		return true, nil
	}
	if l.MaximumHoldingRatio.IsPositive() && p.GetEquity().IsPositive() {
		held := decimal.NewFromInt(p.PositionQuantity(o.Ticker) + o.Quantity).Abs()
		ratio := held.Mul(ask).Div(p.GetEquity())
		if ratio.GreaterThan(l.MaximumHoldingRatio) {
			log.Debugf(log.Portfolio, "%v buy of %v vetoed, holding ratio %v exceeds %v", o.Ticker, o.Quantity, ratio.StringFixed(4), l.MaximumHoldingRatio)
			return true, nil
		}
	}
	return false, nil
}
