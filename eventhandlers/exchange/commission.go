package exchange

import (
	"github.com/shopspring/decimal"
)

// InteractiveBrokersTiered is the US API directed order schedule:
// 0.013 per share up to 500 shares, 0.008 above, minimum 1.30
func InteractiveBrokersTiered() *TieredCommission {
	return &TieredCommission{
		MinimumFee:          decimal.NewFromFloat(1.3),
		RateBelowBreakpoint: decimal.NewFromFloat(0.013),
		RateAboveBreakpoint: decimal.NewFromFloat(0.008),
		Breakpoint:          500,
		PerUnit:             true,
	}
}

// InteractiveBrokersFixed is 0.005 per share, minimum 1.00, capped at half
// of the trade value
func InteractiveBrokersFixed() *TieredCommission {
	return &TieredCommission{
		MinimumFee:          decimal.NewFromInt(1),
		RateBelowBreakpoint: decimal.NewFromFloat(0.005),
		RateAboveBreakpoint: decimal.NewFromFloat(0.005),
		PerUnit:             true,
		MaximumNotionalRate: decimal.NewFromFloat(0.5),
	}
}

// Validate checks that no part of the schedule is negative
func (t *TieredCommission) Validate() error {
	if t.MinimumFee.IsNegative() ||
		t.RateBelowBreakpoint.IsNegative() ||
		t.RateAboveBreakpoint.IsNegative() ||
		t.MaximumNotionalRate.IsNegative() ||
		t.Breakpoint < 0 {
		return errNegativeCommission
	}
	return nil
}

// Calculate returns the commission for a fill
func (t *TieredCommission) Calculate(quantity int64, price decimal.Decimal) decimal.Decimal {
	qty := decimal.NewFromInt(quantity)
	notional := qty.Mul(price)
	rate := t.RateBelowBreakpoint
	if t.Breakpoint > 0 && quantity > t.Breakpoint {
		rate = t.RateAboveBreakpoint
	}
	base := notional
	if t.PerUnit {
		base = qty
	}
	fee := decimal.Max(t.MinimumFee, rate.Mul(base))
	if t.MaximumNotionalRate.IsPositive() {
		fee = decimal.Min(fee, t.MaximumNotionalRate.Mul(notional))
	}
	return fee
}

// Calculate returns the fixed fee
func (f *FixedCommission) Calculate(int64, decimal.Decimal) decimal.Decimal {
	return f.Fee
}

// Calculate returns zero
func (ZeroCommission) Calculate(int64, decimal.Decimal) decimal.Decimal {
	return decimal.Zero
}
