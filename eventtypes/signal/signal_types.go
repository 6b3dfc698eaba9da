package signal

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

// Signal is a strategy's desired direction for a ticker. It carries no size
type Signal struct {
	event.Base
	Action   common.Action   `json:"action"`
	Strength decimal.Decimal `json:"strength"`
}

// Event handler is used for getting trade signal details
type Event interface {
	common.EventHandler
	GetAction() common.Action
	GetStrength() decimal.Decimal
}
