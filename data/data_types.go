package data

import (
	"errors"

	"github.com/thrasher-corp/eventbacktester/common"
)

var (
	// ErrFeedExhausted is returned by Next once every event has been streamed.
	// It marks the normal end of a run
	ErrFeedExhausted = errors.New("data feed exhausted")
	// ErrNoPriceForTicker is returned when no event has been streamed for a
	// ticker yet
	ErrNoPriceForTicker = errors.New("no price available for ticker")
	// ErrNoData is returned when a feed is created without events
	ErrNoData = errors.New("no data loaded")

	errInvalidEvent = errors.New("invalid data event")
)

// Handler is a replayable market data feed which also serves point in time
// prices for the events it has already streamed
type Handler interface {
	common.PriceSource
	HasMore() bool
	Next() (common.DataEventHandler, error)
	Tickers() []string
	Reset()
}

// Base is the streaming implementation shared by bar and tick feeds
type Base struct {
	stream  []common.DataEventHandler
	offset  int
	latest  map[string]common.DataEventHandler
	tickers []string
	isTick  bool
}
