package exchange

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/fill"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
)

// DefaultExchangeName is the venue name stamped on simulated fills
const DefaultExchangeName = "SimulatedMkt"

var (
	errNoPriceSource      = errors.New("no price source set")
	errInvalidPrice       = errors.New("price must be greater than zero")
	errNegativeCommission = errors.New("commission settings cannot be negative")
)

// ExecutionHandler interface dictates what functions are required to submit an order
type ExecutionHandler interface {
	ExecuteOrder(order.Event) (*fill.Fill, error)
}

// Exchange is a naive simulated broker. Orders fill in full at the current
// quote with no latency, slippage or rejection
type Exchange struct {
	Name       string
	Commission CommissionModel
	Prices     common.PriceSource
}

// CommissionModel calculates the fee charged for a fill
type CommissionModel interface {
	Calculate(quantity int64, price decimal.Decimal) decimal.Decimal
}

// TieredCommission charges max(MinimumFee, rate * base) where the base is
// the quantity when PerUnit is set, otherwise the notional. Orders above
// Breakpoint units use the above breakpoint rate
type TieredCommission struct {
	MinimumFee          decimal.Decimal
	RateBelowBreakpoint decimal.Decimal
	RateAboveBreakpoint decimal.Decimal
	Breakpoint          int64
	PerUnit             bool
	// MaximumNotionalRate caps the fee as a fraction of notional. Zero disables it
	MaximumNotionalRate decimal.Decimal
}

// FixedCommission charges the same fee for every fill
type FixedCommission struct {
	Fee decimal.Decimal
}

// ZeroCommission charges nothing
type ZeroCommission struct{}
