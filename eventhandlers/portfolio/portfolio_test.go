package portfolio

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/eventholder"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/risk"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/size"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/fill"
	"github.com/thrasher-corp/eventbacktester/eventtypes/kline"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
	"github.com/thrasher-corp/eventbacktester/eventtypes/signal"
)

var (
	tt         = time.Date(2014, 1, 6, 0, 0, 0, 0, time.UTC)
	errNoQuote = errors.New("no quote")
	errBroken  = errors.New("broken sizer")
)

type fakeQuotes map[string]decimal.Decimal

func (f fakeQuotes) BestBidAsk(ticker string) (bid, ask decimal.Decimal, err error) {
	p, ok := f[ticker]
	if !ok {
		return decimal.Zero, decimal.Zero, errNoQuote
	}
	return p, p, nil
}

// sizerMock sizes everything to a fixed quantity and records what it saw
type sizerMock struct {
	quantity int64
	seen     []*order.Order
	err      error
}

func (s *sizerMock) SizeOrder(_ common.PortfolioReader, o *order.Order) (*order.Order, error) {
	s.seen = append(s.seen, o)
	if s.err != nil {
		return nil, s.err
	}
	return o.WithQuantity(s.quantity)
}

func newTestPortfolio(t *testing.T, sh SizeHandler) (*Portfolio, *eventholder.Holder) {
	t.Helper()
	h, err := holdings.New(decimal.NewFromInt(500000), fakeQuotes{"MSFT": decimal.RequireFromString("50.25")})
	require.NoError(t, err)
	q := &eventholder.Holder{}
	p, err := Setup(sh, &risk.Naive{}, h, q)
	require.NoError(t, err)
	return p, q
}

func TestSetup(t *testing.T) {
	t.Parallel()
	h, err := holdings.New(decimal.NewFromInt(1), fakeQuotes{})
	require.NoError(t, err)
	q := &eventholder.Holder{}

	_, err = Setup(nil, &risk.Naive{}, h, q)
	assert.ErrorIs(t, err, errSizeManagerUnset)
	_, err = Setup(&size.Fixed{}, nil, h, q)
	assert.ErrorIs(t, err, errRiskManagerUnset)
	_, err = Setup(&size.Fixed{}, &risk.Naive{}, nil, q)
	assert.ErrorIs(t, err, errHoldingsUnset)
	_, err = Setup(&size.Fixed{}, &risk.Naive{}, h, nil)
	assert.ErrorIs(t, err, errEventQueueUnset)

	p, err := Setup(&size.Fixed{}, &risk.Naive{}, h, q)
	require.NoError(t, err)
	assert.Same(t, h, p.GetHoldings())
	assert.NotNil(t, p.GetComplianceManager())
}

func TestCreateOrderFromSignal(t *testing.T) {
	t.Parallel()
	p, _ := newTestPortfolio(t, &size.Fixed{})
	s := &signal.Signal{
		Base:   event.Base{Time: tt, Ticker: "MSFT", Reason: "test"},
		Action: common.Buy,
	}
	o, err := p.createOrderFromSignal(s)
	require.NoError(t, err)
	assert.Equal(t, "MSFT", o.Ticker)
	assert.Equal(t, common.Buy, o.Action)
	assert.Zero(t, o.Quantity, "sizing is left to the size manager")
	assert.Equal(t, tt, o.Time)
	assert.Equal(t, "test", o.Reason)
	assert.False(t, o.ID.IsNil())

	s.Action = "HOLD"
	_, err = p.createOrderFromSignal(s)
	assert.ErrorIs(t, err, common.ErrInvalidOrderKind)
}

func TestOnSignal(t *testing.T) {
	t.Parallel()
	sizer := &sizerMock{quantity: 100}
	p, q := newTestPortfolio(t, sizer)

	assert.ErrorIs(t, p.OnSignal(nil), common.ErrNilEvent)

	err := p.OnSignal(&signal.Signal{Base: event.Base{Time: tt, Ticker: "MSFT"}, Action: common.Buy})
	require.NoError(t, err)
	require.Len(t, sizer.seen, 1)
	assert.Zero(t, sizer.seen[0].Quantity, "sizer receives an unsized order")

	require.Equal(t, 1, q.Len())
	ev, ok := q.NextEvent()
	require.True(t, ok)
	o, ok := ev.(*order.Order)
	require.True(t, ok)
	assert.Equal(t, "MSFT", o.Ticker)
	assert.Equal(t, common.Buy, o.Action)
	assert.Equal(t, int64(100), o.Quantity)

	err = p.OnSignal(&signal.Signal{Base: event.Base{Ticker: "MSFT"}, Action: "HOLD"})
	assert.ErrorIs(t, err, common.ErrInvalidOrderKind)

	sizer.err = errBroken
	err = p.OnSignal(&signal.Signal{Base: event.Base{Ticker: "MSFT"}, Action: common.Buy})
	assert.NoError(t, err, "sizing failures are skipped")
	assert.Zero(t, q.Len())

	sizer.err = common.ErrInvalidOrderKind
	err = p.OnSignal(&signal.Signal{Base: event.Base{Ticker: "MSFT"}, Action: common.Buy})
	assert.ErrorIs(t, err, common.ErrInvalidOrderKind, "invalid kinds abort")
}

func TestOnSignalExitWhenFlat(t *testing.T) {
	t.Parallel()
	p, q := newTestPortfolio(t, &size.Fixed{Quantity: 100})
	err := p.OnSignal(&signal.Signal{Base: event.Base{Ticker: "MSFT"}, Action: common.Exit})
	require.NoError(t, err)
	assert.Zero(t, q.Len(), "exit with no position is a no-op")
}

func TestOnFill(t *testing.T) {
	t.Parallel()
	p, _ := newTestPortfolio(t, &size.Fixed{})
	assert.ErrorIs(t, p.OnFill(nil), common.ErrNilEvent)

	f := &fill.Fill{
		Base:       event.Base{Time: tt, Ticker: "MSFT"},
		Action:     common.Buy,
		Quantity:   100,
		Exchange:   "ARCA",
		FillPrice:  decimal.RequireFromString("50.25"),
		Commission: decimal.RequireFromString("1.00"),
	}
	require.NoError(t, p.OnFill(f))
	assert.True(t, decimal.RequireFromString("494974.00").Equal(p.GetHoldings().Cash), "received %v", p.GetHoldings().Cash)
	assert.Equal(t, int64(100), p.GetHoldings().PositionQuantity("MSFT"))

	cm := p.GetComplianceManager()
	require.Len(t, cm.Snapshots, 1)
	assert.Equal(t, "ARCA", cm.Snapshots[0].Orders[0].Exchange)
	assert.True(t, cm.Snapshots[0].Orders[0].CashAfter.Equal(p.GetHoldings().Cash))

	f.Ticker = "NOPE"
	assert.ErrorIs(t, p.OnFill(f), errNoQuote)

	f.Ticker = "MSFT"
	f.Action = common.Exit
	assert.ErrorIs(t, p.OnFill(f), common.ErrInvalidOrderKind)
}

func TestUpdatePortfolioValue(t *testing.T) {
	t.Parallel()
	p, _ := newTestPortfolio(t, &size.Fixed{})
	assert.ErrorIs(t, p.UpdatePortfolioValue(nil), common.ErrNilEvent)
	k := &kline.Kline{Base: event.Base{Time: tt, Ticker: "MSFT"}, Close: decimal.NewFromInt(50)}
	require.NoError(t, p.UpdatePortfolioValue(k))
	snap := p.Snapshot(tt)
	assert.True(t, snap.Equity.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, tt, snap.Time)
}
