package exchange

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
)

var errNoQuote = errors.New("no quote")

type fakePrices struct {
	tick   bool
	bid    decimal.Decimal
	ask    decimal.Decimal
	close  decimal.Decimal
	ticker string
}

func (f *fakePrices) BestBidAsk(ticker string) (bid, ask decimal.Decimal, err error) {
	if ticker != f.ticker {
		return decimal.Zero, decimal.Zero, errNoQuote
	}
	return f.bid, f.ask, nil
}

func (f *fakePrices) LastClose(ticker string) (decimal.Decimal, error) {
	if ticker != f.ticker {
		return decimal.Zero, errNoQuote
	}
	return f.close, nil
}

func (f *fakePrices) IsTickData() bool { return f.tick }

func newOrder(a common.Action, q int64) *order.Order {
	return &order.Order{
		Base:     event.Base{Time: time.Now(), Ticker: "AMZN", Reason: "because"},
		ID:       uuid.Must(uuid.NewV4()),
		Action:   a,
		Quantity: q,
	}
}

func TestExecuteOrderTick(t *testing.T) {
	t.Parallel()
	e := &Exchange{
		Commission: InteractiveBrokersFixed(),
		Prices: &fakePrices{
			tick:   true,
			ticker: "AMZN",
			bid:    decimal.RequireFromString("564.14"),
			ask:    decimal.RequireFromString("565.14"),
		},
	}
	o := newOrder(common.Buy, 100)
	f, err := e.ExecuteOrder(o)
	require.NoError(t, err)
	assert.Equal(t, DefaultExchangeName, f.Exchange)
	assert.Equal(t, "565.14", f.FillPrice.String(), "buys fill at the ask")
	assert.Equal(t, "1", f.Commission.String())
	assert.Equal(t, o.ID, f.OrderID)
	assert.Equal(t, int64(100), f.Quantity)
	assert.Equal(t, o.Time, f.Time)
	assert.Equal(t, "because", f.Reason)

	f, err = e.ExecuteOrder(newOrder(common.Sell, 100))
	require.NoError(t, err)
	assert.Equal(t, "564.14", f.FillPrice.String(), "sells fill at the bid")
}

func TestExecuteOrderBar(t *testing.T) {
	t.Parallel()
	e := &Exchange{
		Name:   "ARCA",
		Prices: &fakePrices{ticker: "AMZN", close: decimal.RequireFromString("566.56")},
	}
	f, err := e.ExecuteOrder(newOrder(common.Sell, 10))
	require.NoError(t, err)
	assert.Equal(t, "ARCA", f.Exchange)
	assert.Equal(t, "566.56", f.FillPrice.String())
	assert.True(t, f.Commission.IsZero(), "no commission model charges nothing")
}

func TestExecuteOrderErrors(t *testing.T) {
	t.Parallel()
	e := &Exchange{}
	_, err := e.ExecuteOrder(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)
	_, err = e.ExecuteOrder(newOrder(common.Buy, 1))
	assert.ErrorIs(t, err, errNoPriceSource)

	p := &fakePrices{ticker: "AMZN"}
	e.Prices = p
	_, err = e.ExecuteOrder(newOrder(common.Exit, 1))
	assert.ErrorIs(t, err, common.ErrInvalidOrderKind)
	_, err = e.ExecuteOrder(newOrder(common.Buy, 0))
	assert.ErrorIs(t, err, common.ErrZeroQuantity)
	_, err = e.ExecuteOrder(newOrder(common.Buy, 1))
	assert.ErrorIs(t, err, errInvalidPrice)

	p.ticker = "GOOG"
	_, err = e.ExecuteOrder(newOrder(common.Buy, 1))
	assert.ErrorIs(t, err, errNoQuote)
	p.tick = true
	_, err = e.ExecuteOrder(newOrder(common.Buy, 1))
	assert.ErrorIs(t, err, errNoQuote)
}
