package kline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/data"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/kline"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tt := time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)
	_, err := New()
	assert.ErrorIs(t, err, data.ErrNoData)
	_, err = New(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)
	_, err = New(&kline.Kline{Base: event.Base{Ticker: "AMZN", Time: tt}})
	assert.ErrorIs(t, err, errInvalidBar)
	_, err = New(&kline.Kline{
		Base:  event.Base{Ticker: "AMZN", Time: tt},
		Close: decimal.NewFromInt(2),
		High:  decimal.NewFromInt(1),
		Low:   decimal.NewFromInt(3),
	})
	assert.ErrorIs(t, err, errInvalidBar)

	d, err := New(
		&kline.Kline{Base: event.Base{Ticker: "AMZN", Time: tt}, Close: decimal.NewFromInt(2)},
		&kline.Kline{Base: event.Base{Ticker: "AMZN", Time: tt.AddDate(0, 0, 1)}, Close: decimal.NewFromInt(3)},
	)
	require.NoError(t, err)
	var h data.Handler = d
	assert.False(t, h.IsTickData())
	ev, err := h.Next()
	require.NoError(t, err)
	assert.Equal(t, common.MarketKind, ev.Kind())
	c, err := h.LastClose("AMZN")
	require.NoError(t, err)
	assert.Equal(t, "2", c.String())
}

func TestAdjustedClosePrices(t *testing.T) {
	t.Parallel()
	tt := time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)
	_, err := New(&kline.Kline{
		Base:     event.Base{Ticker: "AMZN", Time: tt},
		Close:    decimal.NewFromInt(2),
		AdjClose: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, errInvalidBar)

	d, err := New(&kline.Kline{
		Base:     event.Base{Ticker: "AMZN", Time: tt},
		Close:    decimal.NewFromInt(100),
		AdjClose: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	_, err = d.Next()
	require.NoError(t, err)
	c, err := d.LastClose("AMZN")
	require.NoError(t, err)
	assert.Equal(t, "50", c.String(), "bars fill and mark at the adjusted close")
	bid, ask, err := d.BestBidAsk("AMZN")
	require.NoError(t, err)
	assert.Equal(t, "50", bid.String())
	assert.Equal(t, "50", ask.String())
}
