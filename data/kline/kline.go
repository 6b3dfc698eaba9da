package kline

import (
	"fmt"

	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/kline"
)

// New validates bars and loads them into a feed. Bars from several tickers
// are merged into a single timeline
func New(bars ...*kline.Kline) (*DataFromKline, error) {
	events := make([]common.DataEventHandler, len(bars))
	for i := range bars {
		if err := validate(bars[i]); err != nil {
			return nil, fmt.Errorf("%w at index %d", err, i)
		}
		events[i] = bars[i]
	}
	d := &DataFromKline{}
	if err := d.SetStream(false, events); err != nil {
		return nil, err
	}
	return d, nil
}

func validate(k *kline.Kline) error {
	if k == nil {
		return common.ErrNilEvent
	}
	if !k.Close.IsPositive() {
		return fmt.Errorf("%w %s %v: close must be positive", errInvalidBar, k.Ticker, k.Time)
	}
	if k.AdjClose.IsNegative() {
		return fmt.Errorf("%w %s %v: adjusted close cannot be negative", errInvalidBar, k.Ticker, k.Time)
	}
	if !k.High.IsZero() && k.High.LessThan(k.Low) {
		return fmt.Errorf("%w %s %v: high below low", errInvalidBar, k.Ticker, k.Time)
	}
	return nil
}
