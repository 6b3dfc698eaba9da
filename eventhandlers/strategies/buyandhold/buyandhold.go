package buyandhold

import (
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/base"
)

const (
	// Name is the strategy name
	Name        = "buyandhold"
	description = `Buy and hold purchases every ticker the first time it is seen and never sells. It is the benchmark other strategies are measured against`
)

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// CalculateSignals emits a single BOT signal per ticker
func (s *Strategy) CalculateSignals(ev common.DataEventHandler, q common.EventAppender) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	if q == nil {
		return common.ErrNilArguments
	}
	if s.IsInvested(ev.GetTicker()) {
		return nil
	}
	sig, err := s.CreateSignal(ev, common.Buy, "first sighting")
	if err != nil {
		return err
	}
	q.AppendEvent(sig)
	s.SetInvested(ev.GetTicker(), true)
	return nil
}

// SetCustomSettings is not supported by buy and hold
func (s *Strategy) SetCustomSettings(settings map[string]any) error {
	if len(settings) > 0 {
		return base.ErrCustomSettingsUnsupported
	}
	return nil
}

// SetDefaults forgets which tickers have been bought
func (s *Strategy) SetDefaults() {
	s.ResetInvested()
}
