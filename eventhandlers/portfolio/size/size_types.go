package size

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

// DefaultQuantity is the lot used when a fixed sizer has no quantity set
const DefaultQuantity int64 = 100

var (
	errNoPrice        = errors.New("no price available to size order")
	errNegativeWeight = errors.New("weight cannot be negative")
)

// Fixed sizes every order to the same number of units
type Fixed struct {
	Quantity int64
}

// DollarWeight sizes an order so its notional is a fraction of equity
type DollarWeight struct {
	Weights map[string]decimal.Decimal
	Prices  common.PriceSource
}
