package exchange

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInteractiveBrokersTiered(t *testing.T) {
	t.Parallel()
	c := InteractiveBrokersTiered()
	for _, tc := range []struct {
		quantity int64
		want     string
	}{
		{1, "1.3"},
		{100, "1.3"},
		{200, "2.6"},
		{500, "6.5"},
		{501, "4.008"},
		{1000, "8"},
	} {
		got := c.Calculate(tc.quantity, decimal.NewFromInt(50))
		assert.Truef(t, decimal.RequireFromString(tc.want).Equal(got), "%d: expected %v received %v", tc.quantity, tc.want, got)
	}
}

func TestInteractiveBrokersFixed(t *testing.T) {
	t.Parallel()
	c := InteractiveBrokersFixed()
	assert.Equal(t, "1", c.Calculate(100, decimal.NewFromInt(50)).String(), "minimum fee")
	assert.Equal(t, "5", c.Calculate(1000, decimal.NewFromInt(50)).String())
	assert.Equal(t, "0.5", c.Calculate(10, decimal.NewFromFloat(0.1)).String(), "capped at half of notional")
}

func TestTieredNotional(t *testing.T) {
	t.Parallel()
	c := &TieredCommission{
		MinimumFee:          decimal.NewFromInt(5),
		RateBelowBreakpoint: decimal.NewFromFloat(0.001),
		RateAboveBreakpoint: decimal.NewFromFloat(0.0005),
		Breakpoint:          1000,
	}
	assert.Equal(t, "5", c.Calculate(10, decimal.NewFromInt(100)).String())
	assert.Equal(t, "10", c.Calculate(1000, decimal.NewFromInt(10)).String())
	assert.Equal(t, "10", c.Calculate(2000, decimal.NewFromInt(10)).String())
}

func TestTieredValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, InteractiveBrokersTiered().Validate())
	assert.ErrorIs(t, (&TieredCommission{MinimumFee: decimal.NewFromInt(-1)}).Validate(), errNegativeCommission)
	assert.ErrorIs(t, (&TieredCommission{Breakpoint: -1}).Validate(), errNegativeCommission)
}

func TestFixedAndZero(t *testing.T) {
	t.Parallel()
	f := &FixedCommission{Fee: decimal.NewFromInt(1)}
	assert.Equal(t, "1", f.Calculate(1000000, decimal.NewFromInt(1)).String())
	assert.True(t, ZeroCommission{}.Calculate(100, decimal.NewFromInt(1)).IsZero())
}
