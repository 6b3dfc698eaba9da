package ticker

import (
	"fmt"

	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/ticker"
)

// New validates quotes and loads them into a feed
func New(ticks ...*ticker.Tick) (*DataFromTicks, error) {
	events := make([]common.DataEventHandler, len(ticks))
	for i := range ticks {
		if ticks[i] == nil {
			return nil, fmt.Errorf("%w at index %d", common.ErrNilEvent, i)
		}
		if !ticks[i].Bid.IsPositive() || !ticks[i].Ask.IsPositive() {
			return nil, fmt.Errorf("%w %s %v: bid and ask must be positive", errInvalidQuote, ticks[i].Ticker, ticks[i].Time)
		}
		if ticks[i].Bid.GreaterThan(ticks[i].Ask) {
			return nil, fmt.Errorf("%w %s %v: bid %v above ask %v", errInvalidQuote, ticks[i].Ticker, ticks[i].Time, ticks[i].Bid, ticks[i].Ask)
		}
		events[i] = ticks[i]
	}
	d := &DataFromTicks{}
	if err := d.SetStream(true, events); err != nil {
		return nil, err
	}
	return d, nil
}
