package fill

import (
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

// Kind returns FillKind
func (f *Fill) Kind() common.Kind {
	return common.FillKind
}

// GetOrderID returns the ID of the order that was filled
func (f *Fill) GetOrderID() uuid.UUID {
	return f.OrderID
}

// GetAction returns the direction
func (f *Fill) GetAction() common.Action {
	return f.Action
}

// GetQuantity returns the number of units filled
func (f *Fill) GetQuantity() int64 {
	return f.Quantity
}

// GetExchange returns the venue name
func (f *Fill) GetExchange() string {
	return f.Exchange
}

// GetFillPrice returns the price per unit
func (f *Fill) GetFillPrice() decimal.Decimal {
	return f.FillPrice
}

// GetCommission returns the commission paid for the whole fill
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}

// GetNotional returns quantity multiplied by fill price, excluding commission
func (f *Fill) GetNotional() decimal.Decimal {
	return f.FillPrice.Mul(decimal.NewFromInt(f.Quantity))
}
