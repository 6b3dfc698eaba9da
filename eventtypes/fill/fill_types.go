package fill

import (
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

// Fill is the realised outcome of an order at a price and commission
type Fill struct {
	event.Base
	OrderID    uuid.UUID       `json:"order-id"`
	Action     common.Action   `json:"action"`
	Quantity   int64           `json:"quantity"`
	Exchange   string          `json:"exchange"`
	FillPrice  decimal.Decimal `json:"fill-price"`
	Commission decimal.Decimal `json:"commission"`
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.EventHandler
	GetOrderID() uuid.UUID
	GetAction() common.Action
	GetQuantity() int64
	GetExchange() string
	GetFillPrice() decimal.Decimal
	GetCommission() decimal.Decimal
	GetNotional() decimal.Decimal
}
