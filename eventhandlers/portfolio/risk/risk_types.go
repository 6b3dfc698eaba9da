package risk

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

var (
	errMinGreaterThanMax = errors.New("minimum order quantity cannot be greater than maximum")
	errNegativeLimit     = errors.New("limits cannot be negative")
)

// Naive passes every non-empty order through untouched
type Naive struct{}

// Limits vetoes or splits orders that fall outside configured bounds
type Limits struct {
	// MinimumOrderQuantity orders smaller than this are vetoed
	MinimumOrderQuantity int64
	// MaximumOrderQuantity orders larger than this are split into chunks
	MaximumOrderQuantity int64
	// MaximumHoldingRatio is the largest share of equity a single ticker may
	// be worth after a buy. Zero disables the check
	MaximumHoldingRatio decimal.Decimal
	// CanUseLeverage allows buys that cost more than the cash available
	CanUseLeverage bool
	Prices         common.PriceSource
}
