package position

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
)

var tt = time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "expected %v received %v %v", want, got, msgAndArgs)
}

func TestCreateLong(t *testing.T) {
	t.Parallel()
	p, err := Create(common.Buy, "AMZN", 100, d("566.56"), d("1.00"), d("564.14"), d("565.14"), tt)
	require.NoError(t, err)

	assert.Equal(t, common.Buy, p.OrderType)
	assert.Equal(t, int64(100), p.Quantity)
	assert.Equal(t, int64(100), p.Buys)
	assert.Zero(t, p.Sells)
	assertDecimal(t, "566.56", p.AvgBought, "avg bot")
	assertDecimal(t, "0", p.AvgSold, "avg sld")
	assertDecimal(t, "56656", p.TotalBought, "total bot")
	assertDecimal(t, "566.57", p.AvgPrice, "avg price")
	assertDecimal(t, "56657", p.Cost, "cost")
	assertDecimal(t, "56464", p.MarketValue, "market value")
	assertDecimal(t, "-193", p.UnrealisedPNL, "unrealised")
	assertDecimal(t, "-193", p.RealisedPNL, "realised")
	assertDecimal(t, "-56657", p.NetInclCommission, "net incl commission")
	assert.Equal(t, tt, p.OpenedAt)
}

func TestCreateShort(t *testing.T) {
	t.Parallel()
	p, err := Create(common.Sell, "MSFT", 100, d("50.25"), d("1"), d("50"), d("50.5"), tt)
	require.NoError(t, err)

	assert.Equal(t, int64(-100), p.Quantity)
	assertDecimal(t, "50.24", p.AvgPrice, "avg price")
	assertDecimal(t, "-5024", p.Cost, "cost is sign flipped for a sell")
	assertDecimal(t, "-5025", p.MarketValue, "market value")
	assertDecimal(t, "-1", p.UnrealisedPNL, "unrealised")
	assertDecimal(t, "-1", p.RealisedPNL, "realised")
	assert.Equal(t, common.Buy, p.ClosingAction())
	assert.Equal(t, int64(100), p.OpenQuantity())
}

func TestCreateErrors(t *testing.T) {
	t.Parallel()
	_, err := Create(common.Exit, "AMZN", 1, d("1"), d("0"), d("1"), d("1"), tt)
	assert.ErrorIs(t, err, common.ErrInvalidOrderKind)

	_, err = Create("HOLD", "AMZN", 1, d("1"), d("0"), d("1"), d("1"), tt)
	assert.ErrorIs(t, err, common.ErrInvalidOrderKind)

	_, err = Create(common.Buy, "", 1, d("1"), d("0"), d("1"), d("1"), tt)
	assert.ErrorIs(t, err, errEmptyTicker)

	_, err = Create(common.Buy, "AMZN", 0, d("1"), d("0"), d("1"), d("1"), tt)
	assert.ErrorIs(t, err, common.ErrZeroQuantity)

	_, err = Create(common.Buy, "AMZN", -1, d("1"), d("0"), d("1"), d("1"), tt)
	assert.ErrorIs(t, err, common.ErrNegativeQuantity)

	_, err = Create(common.Buy, "AMZN", 1, d("-1"), d("0"), d("1"), d("1"), tt)
	assert.ErrorIs(t, err, errNegativePrice)

	_, err = Create(common.Buy, "AMZN", 1, d("1"), d("0"), d("-1"), d("1"), tt)
	assert.ErrorIs(t, err, errNegativePrice)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	p, err := Create(common.Buy, "XOM", 100, d("74.78"), d("1.00"), d("74.78"), d("74.80"), tt)
	require.NoError(t, err)

	trades := []struct {
		action     common.Action
		quantity   int64
		price      string
		commission string
	}{
		{common.Buy, 100, "74.63", "1.00"},
		{common.Buy, 250, "74.620", "1.25"},
		{common.Sell, 200, "74.58", "1.00"},
		{common.Sell, 250, "75.26", "1.25"},
	}
	for i := range trades {
		err = p.Trade(trades[i].action, trades[i].quantity, d(trades[i].price), d(trades[i].commission), tt.AddDate(0, 0, i+1))
		require.NoError(t, err)
		require.NoError(t, p.UpdateValue(d("77.75"), d("77.77")))
	}

	assert.Equal(t, common.Buy, p.OrderType)
	assert.Equal(t, "XOM", p.Ticker)
	assert.Zero(t, p.Quantity)
	assert.True(t, p.IsClosed())
	assert.Equal(t, tt.AddDate(0, 0, 4), p.ClosedAt)
	assert.Equal(t, int64(450), p.Buys)
	assert.Equal(t, int64(450), p.Sells)
	assert.Zero(t, p.Net)
	assertDecimal(t, "74.65778", p.AvgBought.Round(5), "avg bot")
	assertDecimal(t, "74.95778", p.AvgSold.Round(5), "avg sld")
	assertDecimal(t, "33596", p.TotalBought, "total bot")
	assertDecimal(t, "33731", p.TotalSold, "total sld")
	assertDecimal(t, "135", p.NetTotal, "net total")
	assertDecimal(t, "5.5", p.TotalCommission, "commission")
	assertDecimal(t, "129.5", p.NetInclCommission, "net incl commission")
	assertDecimal(t, "74.665", p.AvgPrice.Round(3), "avg price")
	assertDecimal(t, "0", p.Cost, "cost")
	assertDecimal(t, "0", p.MarketValue, "market value")
	assertDecimal(t, "0", p.UnrealisedPNL, "unrealised")
	assertDecimal(t, "129.5", p.RealisedPNL, "realised")

	// realised equals sell proceeds less buy cost less commission, to the cent
	assertDecimal(t, p.TotalSold.Sub(p.TotalBought).Sub(p.TotalCommission).String(), p.RealisedPNL)

	err = p.Trade(common.Buy, 1, d("1"), d("0"), tt)
	assert.ErrorIs(t, err, ErrPositionClosed)
}

func TestTradeOppositeSideKeepsCostBasis(t *testing.T) {
	t.Parallel()
	p, err := Create(common.Sell, "MSFT", 200, d("10"), d("2"), d("10"), d("10"), tt)
	require.NoError(t, err)
	assertDecimal(t, "9.99", p.AvgPrice)

	require.NoError(t, p.Trade(common.Buy, 50, d("9"), d("1"), tt))
	assertDecimal(t, "9.99", p.AvgPrice, "buying back a short does not move the basis")
	assert.Equal(t, int64(-150), p.Quantity)
	assertDecimal(t, "-1498.5", p.Cost)

	require.NoError(t, p.Trade(common.Sell, 100, d("11"), d("2"), tt))
	// (1998 + 1100 - 2) / 300
	assertDecimal(t, "10.32", p.AvgPrice.Round(2))
	assert.Equal(t, int64(-250), p.Quantity)
}

func TestTradeErrors(t *testing.T) {
	t.Parallel()
	p, err := Create(common.Buy, "AMZN", 100, d("1"), d("0"), d("1"), d("1"), tt)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Trade(common.Exit, 1, d("1"), d("0"), tt), common.ErrInvalidOrderKind)
	assert.ErrorIs(t, p.Trade(common.Buy, 0, d("1"), d("0"), tt), common.ErrZeroQuantity)
	assert.ErrorIs(t, p.Trade(common.Buy, 1, d("-1"), d("0"), tt), errNegativePrice)
	assert.Equal(t, int64(100), p.Quantity, "failed trades must not change the position")
}

func TestUpdateValueIdempotent(t *testing.T) {
	t.Parallel()
	p, err := Create(common.Buy, "AMZN", 100, d("566.56"), d("1.00"), d("564.14"), d("565.14"), tt)
	require.NoError(t, err)

	require.NoError(t, p.UpdateValue(d("570.00"), d("570.10")))
	mv, upnl, rpnl := p.MarketValue, p.UnrealisedPNL, p.RealisedPNL
	require.NoError(t, p.UpdateValue(d("570.00"), d("570.10")))
	assert.True(t, mv.Equal(p.MarketValue))
	assert.True(t, upnl.Equal(p.UnrealisedPNL))
	assert.True(t, rpnl.Equal(p.RealisedPNL))
	assertDecimal(t, "57005", p.MarketValue)
}
