package base

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/signal"
)

// IsInvested returns whether the strategy has signalled an entry for the
// ticker without a following exit
func (s *Strategy) IsInvested(ticker string) bool {
	return s.invested[ticker]
}

// SetInvested records the strategy's view of its exposure to a ticker
func (s *Strategy) SetInvested(ticker string, invested bool) {
	if s.invested == nil {
		s.invested = make(map[string]bool)
	}
	if !invested {
		delete(s.invested, ticker)
		return
	}
	s.invested[ticker] = true
}

// ResetInvested forgets all exposure
func (s *Strategy) ResetInvested() {
	s.invested = nil
}

// CreateSignal builds a full strength signal for the market event
func (s *Strategy) CreateSignal(ev common.DataEventHandler, action common.Action, reason string) (*signal.Signal, error) {
	if ev == nil {
		return nil, common.ErrNilEvent
	}
	if !action.IsValid() {
		return nil, common.ErrInvalidOrderKind
	}
	return &signal.Signal{
		Base: event.Base{
			Time:   ev.GetTime(),
			Ticker: ev.GetTicker(),
			Reason: reason,
		},
		Action:   action,
		Strength: decimal.NewFromInt(1),
	}, nil
}
