package common

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Action is the direction carried by signals, orders and fills
type Action string

const (
	// Buy is a purchase of units
	Buy Action = "BOT"
	// Sell is a sale of units
	Sell Action = "SLD"
	// Exit requests that any open position in a ticker is liquidated.
	// It is only valid on signals and is resolved into Buy or Sell by a sizer
	Exit Action = "EXIT"
)

// Kind identifies which of the four event variants an event is
type Kind uint8

// Event kinds
const (
	UnknownKind Kind = iota
	MarketKind
	SignalKind
	OrderKind
	FillKind
)

const (
	// BarDataType is a config readable data type for OHLCV bar data
	BarDataType = "bar"
	// TickDataType is a config readable data type for bid/ask quotes
	TickDataType = "tick"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were passed in
	// when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilPointer is returned when a required collaborator has not been set
	ErrNilPointer = errors.New("nil pointer")
	// ErrNilEvent is a common error for whenever a nil event occurs when it shouldn't have
	ErrNilEvent = errors.New("nil event received")
	// ErrInvalidOrderKind is returned when an order or trade carries an action
	// other than BOT or SLD. It indicates corrupt data and aborts a run
	ErrInvalidOrderKind = errors.New("invalid order kind")
	// ErrUnknownEventKind is returned when the dispatcher receives an event it
	// cannot route
	ErrUnknownEventKind = errors.New("unknown event kind")
	// ErrZeroQuantity is returned when an opening trade has no units
	ErrZeroQuantity = errors.New("quantity cannot be zero")
	// ErrNegativeQuantity is returned when a quantity is below zero
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	// ErrInvalidDataType occurs when an invalid data type is defined in the config
	ErrInvalidDataType = errors.New("invalid datatype received")
)

// EventHandler is implemented by every event flowing through the queue
type EventHandler interface {
	Kind() Kind
	GetOffset() int64
	SetOffset(int64)
	GetTime() time.Time
	GetTicker() string
	GetReason() string
}

// DataEventHandler is a MARKET event, either a bar or a tick
type DataEventHandler interface {
	EventHandler
	ClosePrice() decimal.Decimal
	BidAsk() (bid, ask decimal.Decimal)
	Clone() DataEventHandler
}

// EventAppender is the write side of the event queue
type EventAppender interface {
	AppendEvent(EventHandler)
}

// PriceSource provides point in time prices for a ticker
type PriceSource interface {
	BestBidAsk(ticker string) (bid, ask decimal.Decimal, err error)
	LastClose(ticker string) (decimal.Decimal, error)
	IsTickData() bool
}

// PortfolioReader is the read only view of the portfolio offered to sizers
// and refiners
type PortfolioReader interface {
	PositionQuantity(ticker string) int64
	GetCash() decimal.Decimal
	GetEquity() decimal.Decimal
}
