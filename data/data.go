package data

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

// SetStream loads copies of the events to replay, so the caller's events are
// never renumbered. Events are ordered by time, events sharing a time keep
// the order they were supplied in
func (b *Base) SetStream(isTick bool, events []common.DataEventHandler) error {
	if len(events) == 0 {
		return ErrNoData
	}
	seen := make(map[string]bool)
	var tickers []string
	for i := range events {
		if events[i] == nil {
			return fmt.Errorf("%w at index %d: %v", errInvalidEvent, i, common.ErrNilEvent)
		}
		if events[i].GetTicker() == "" || events[i].GetTime().IsZero() {
			return fmt.Errorf("%w at index %d: missing ticker or time", errInvalidEvent, i)
		}
		if !seen[events[i].GetTicker()] {
			seen[events[i].GetTicker()] = true
			tickers = append(tickers, events[i].GetTicker())
		}
	}
	stream := make([]common.DataEventHandler, len(events))
	for i := range events {
		stream[i] = events[i].Clone()
	}
	sort.SliceStable(stream, func(i, j int) bool {
		return stream[i].GetTime().Before(stream[j].GetTime())
	})
	for i := range stream {
		stream[i].SetOffset(int64(i + 1))
	}
	b.stream = stream
	b.tickers = tickers
	b.isTick = isTick
	b.Reset()
	return nil
}

// HasMore returns whether there are events left to stream
func (b *Base) HasMore() bool {
	return b.offset < len(b.stream)
}

// Next returns the next event and makes its prices current
func (b *Base) Next() (common.DataEventHandler, error) {
	if !b.HasMore() {
		return nil, ErrFeedExhausted
	}
	ev := b.stream[b.offset]
	b.offset++
	b.latest[ev.GetTicker()] = ev
	return ev, nil
}

// Reset rewinds the feed to the start
func (b *Base) Reset() {
	b.offset = 0
	b.latest = make(map[string]common.DataEventHandler)
}

// Tickers returns every ticker in the feed in order of first appearance
func (b *Base) Tickers() []string {
	return b.tickers
}

// IsTickData returns whether the feed carries quotes rather than bars
func (b *Base) IsTickData() bool {
	return b.isTick
}

// Latest returns the most recently streamed event for a ticker
func (b *Base) Latest(ticker string) (common.DataEventHandler, error) {
	ev, ok := b.latest[ticker]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoPriceForTicker, ticker)
	}
	return ev, nil
}

// BestBidAsk returns the latest quote for a ticker. Bars quote their close
// on both sides
func (b *Base) BestBidAsk(ticker string) (bid, ask decimal.Decimal, err error) {
	ev, err := b.Latest(ticker)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	bid, ask = ev.BidAsk()
	return bid, ask, nil
}

// LastClose returns the latest close for a ticker. Ticks close at their mid
func (b *Base) LastClose(ticker string) (decimal.Decimal, error) {
	ev, err := b.Latest(ticker)
	if err != nil {
		return decimal.Zero, err
	}
	return ev.ClosePrice(), nil
}
