package data

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/kline"
	"github.com/thrasher-corp/eventbacktester/eventtypes/ticker"
)

var tt = time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)

func bar(ticker string, offset int, c int64) *kline.Kline {
	return &kline.Kline{
		Base:  event.Base{Ticker: ticker, Time: tt.AddDate(0, 0, offset)},
		Close: decimal.NewFromInt(c),
	}
}

func TestSetStream(t *testing.T) {
	t.Parallel()
	b := &Base{}
	assert.ErrorIs(t, b.SetStream(false, nil), ErrNoData)
	assert.ErrorIs(t, b.SetStream(false, []common.DataEventHandler{nil}), errInvalidEvent)
	assert.ErrorIs(t, b.SetStream(false, []common.DataEventHandler{&kline.Kline{}}), errInvalidEvent)

	err := b.SetStream(false, []common.DataEventHandler{
		bar("GOOG", 1, 3),
		bar("AMZN", 0, 1),
		bar("AMZN", 1, 2),
		bar("GOOG", 0, 4),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"GOOG", "AMZN"}, b.Tickers())
	assert.False(t, b.IsTickData())

	var got []string
	for b.HasMore() {
		ev, err := b.Next()
		require.NoError(t, err)
		got = append(got, ev.GetTicker()+ev.ClosePrice().String())
	}
	assert.Equal(t, []string{"AMZN1", "GOOG4", "GOOG3", "AMZN2"}, got, "ordered by time, stable within a time")

	_, err = b.Next()
	assert.ErrorIs(t, err, ErrFeedExhausted)
}

func TestPrices(t *testing.T) {
	t.Parallel()
	b := &Base{}
	require.NoError(t, b.SetStream(true, []common.DataEventHandler{
		&ticker.Tick{Base: event.Base{Ticker: "AMZN", Time: tt}, Bid: decimal.NewFromInt(10), Ask: decimal.NewFromInt(12)},
		&ticker.Tick{Base: event.Base{Ticker: "AMZN", Time: tt.Add(time.Second)}, Bid: decimal.NewFromInt(11), Ask: decimal.NewFromInt(13)},
	}))
	assert.True(t, b.IsTickData())

	_, _, err := b.BestBidAsk("AMZN")
	assert.ErrorIs(t, err, ErrNoPriceForTicker, "nothing streamed yet")
	_, err = b.LastClose("AMZN")
	assert.ErrorIs(t, err, ErrNoPriceForTicker)

	_, err = b.Next()
	require.NoError(t, err)
	bid, ask, err := b.BestBidAsk("AMZN")
	require.NoError(t, err)
	assert.Equal(t, "10", bid.String())
	assert.Equal(t, "12", ask.String())
	c, err := b.LastClose("AMZN")
	require.NoError(t, err)
	assert.Equal(t, "11", c.String())

	_, err = b.Next()
	require.NoError(t, err)
	bid, _, err = b.BestBidAsk("AMZN")
	require.NoError(t, err)
	assert.Equal(t, "11", bid.String(), "prices follow the stream")

	b.Reset()
	assert.True(t, b.HasMore())
	_, err = b.Latest("AMZN")
	assert.ErrorIs(t, err, ErrNoPriceForTicker)
}

func TestSetStreamCopiesEvents(t *testing.T) {
	t.Parallel()
	in := bar("AMZN", 0, 1)
	b := &Base{}
	require.NoError(t, b.SetStream(false, []common.DataEventHandler{in}))
	ev, err := b.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), ev.GetOffset())
	assert.Zero(t, in.GetOffset(), "the caller's event should not be renumbered")
	assert.NotSame(t, in, ev)
}
