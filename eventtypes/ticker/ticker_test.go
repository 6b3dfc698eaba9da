package ticker

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

func TestTick(t *testing.T) {
	t.Parallel()
	tk := &Tick{
		Base: event.Base{Ticker: "AMZN"},
		Bid:  decimal.RequireFromString("564.14"),
		Ask:  decimal.RequireFromString("565.14"),
	}
	var e common.DataEventHandler = tk
	assert.Equal(t, common.MarketKind, e.Kind())
	bid, ask := e.BidAsk()
	assert.Equal(t, "564.14", bid.String())
	assert.Equal(t, "565.14", ask.String())
	assert.Equal(t, "564.64", e.ClosePrice().String())
	assert.Equal(t, "1", tk.Spread().String())
}
