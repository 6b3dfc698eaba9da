package movingaveragecross

import (
	"fmt"

	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/base"
	"github.com/thrasher-corp/gct-ta/indicators"
)

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
// be it definition of terms or to highlight its purpose
func (s *Strategy) Description() string {
	return description
}

// CalculateSignals records the close of the market event and compares the
// short and long averages once enough closes are held for the ticker.
// BOT is emitted on an upward cross when not invested, EXIT on a downward
// cross when invested
func (s *Strategy) CalculateSignals(ev common.DataEventHandler, q common.EventAppender) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	if q == nil {
		return common.ErrNilArguments
	}
	if s.longWindow == 0 {
		s.SetDefaults()
	}
	if s.closes == nil {
		s.closes = make(map[string][]float64)
	}
	ticker := ev.GetTicker()
	closes := append(s.closes[ticker], ev.ClosePrice().InexactFloat64())
	if len(closes) > s.longWindow {
		closes = closes[len(closes)-s.longWindow:]
	}
	s.closes[ticker] = closes
	if len(closes) < s.longWindow {
		return nil
	}

	shortSMA, ok := latestSMA(closes, s.shortWindow)
	if !ok {
		return nil
	}
	longSMA, ok := latestSMA(closes, s.longWindow)
	if !ok {
		return nil
	}

	invested := s.IsInvested(ticker)
	switch {
	case shortSMA > longSMA && !invested:
		sig, err := s.CreateSignal(ev, common.Buy, fmt.Sprintf("short SMA %.4f above long SMA %.4f", shortSMA, longSMA))
		if err != nil {
			return err
		}
		q.AppendEvent(sig)
		s.SetInvested(ticker, true)
	case shortSMA < longSMA && invested:
		sig, err := s.CreateSignal(ev, common.Exit, fmt.Sprintf("short SMA %.4f below long SMA %.4f", shortSMA, longSMA))
		if err != nil {
			return err
		}
		q.AppendEvent(sig)
		s.SetInvested(ticker, false)
	}
	return nil
}

// latestSMA returns the simple moving average of the final period closes
func latestSMA(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period {
		return 0, false
	}
	sma := indicators.SMA(closes[len(closes)-period:], period)
	if len(sma) == 0 {
		return 0, false
	}
	return sma[len(sma)-1], true
}

// SetCustomSettings allows a user to modify the average windows in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]any) error {
	shortWindow, longWindow := s.shortWindow, s.longWindow
	for k, v := range customSettings {
		switch k {
		case shortWindowKey:
			w, ok := windowValue(v)
			if !ok {
				return fmt.Errorf("%w provided %s value could not be parsed: %v", base.ErrInvalidCustomSettings, shortWindowKey, v)
			}
			shortWindow = w
		case longWindowKey:
			w, ok := windowValue(v)
			if !ok {
				return fmt.Errorf("%w provided %s value could not be parsed: %v", base.ErrInvalidCustomSettings, longWindowKey, v)
			}
			longWindow = w
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}
	if shortWindow >= longWindow {
		return fmt.Errorf("%w %w short %v long %v", base.ErrInvalidCustomSettings, errShortWindowNotShorter, shortWindow, longWindow)
	}
	s.shortWindow, s.longWindow = shortWindow, longWindow
	return nil
}

// windowValue accepts whole positive numbers as decoded from JSON or YAML
func windowValue(v any) (int, bool) {
	var w int
	switch val := v.(type) {
	case int:
		w = val
	case int64:
		w = int(val)
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		w = int(val)
	default:
		return 0, false
	}
	return w, w > 0
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.shortWindow = DefaultShortWindow
	s.longWindow = DefaultLongWindow
	s.closes = make(map[string][]float64)
	s.ResetInvested()
}
