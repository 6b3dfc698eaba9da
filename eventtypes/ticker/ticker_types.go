package ticker

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

// Tick is a top of book quote and is processed as a MARKET event
type Tick struct {
	event.Base
	Bid decimal.Decimal `json:"bid"`
	Ask decimal.Decimal `json:"ask"`
}
