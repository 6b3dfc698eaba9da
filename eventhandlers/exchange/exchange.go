package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/fill"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
)

// ExecuteOrder fills an order in full. Tick data fills buys at the ask and
// sells at the bid, bar data fills at the last close
func (e *Exchange) ExecuteOrder(o order.Event) (*fill.Fill, error) {
	if o == nil {
		return nil, common.ErrNilEvent
	}
	if e.Prices == nil {
		return nil, errNoPriceSource
	}
	if err := common.CheckTradeable(o.GetAction()); err != nil {
		return nil, fmt.Errorf("%s %w", o.GetTicker(), err)
	}
	if o.GetQuantity() <= 0 {
		return nil, fmt.Errorf("%s %w: %d", o.GetTicker(), common.ErrZeroQuantity, o.GetQuantity())
	}
	price, err := e.fillPrice(o)
	if err != nil {
		return nil, err
	}
	commission := decimal.Zero
	if e.Commission != nil {
		commission = e.Commission.Calculate(o.GetQuantity(), price)
	}
	name := e.Name
	if name == "" {
		name = DefaultExchangeName
	}
	return &fill.Fill{
		Base: event.Base{
			Time:   o.GetTime(),
			Ticker: o.GetTicker(),
			Reason: o.GetReason(),
		},
		OrderID:    o.GetID(),
		Action:     o.GetAction(),
		Quantity:   o.GetQuantity(),
		Exchange:   name,
		FillPrice:  price,
		Commission: commission,
	}, nil
}

func (e *Exchange) fillPrice(o order.Event) (decimal.Decimal, error) {
	var price decimal.Decimal
	if e.Prices.IsTickData() {
		bid, ask, err := e.Prices.BestBidAsk(o.GetTicker())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s %w", o.GetTicker(), err)
		}
		price = ask
		if o.GetAction() == common.Sell {
			price = bid
		}
	} else {
		var err error
		price, err = e.Prices.LastClose(o.GetTicker())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s %w", o.GetTicker(), err)
		}
	}
	if !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s %w: %v", o.GetTicker(), errInvalidPrice, price)
	}
	return price, nil
}
