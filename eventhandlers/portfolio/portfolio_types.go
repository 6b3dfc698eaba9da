package portfolio

import (
	"errors"
	"time"

	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/compliance"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/eventbacktester/eventtypes/fill"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
	"github.com/thrasher-corp/eventbacktester/eventtypes/signal"
)

var (
	errSizeManagerUnset  = errors.New("size manager unset")
	errRiskManagerUnset  = errors.New("risk manager unset")
	errHoldingsUnset     = errors.New("holdings unset")
	errEventQueueUnset   = errors.New("event queue unset")
	errSizerReturnedNone = errors.New("sizer returned no order")
)

// Portfolio bridges signals to orders and fills back into the holdings
type Portfolio struct {
	sizeManager SizeHandler
	riskManager RiskHandler
	holdings    *holdings.Holdings
	queue       common.EventAppender
	compliance  compliance.Manager
}

// Handler contains all functions expected to operate a portfolio manager
type Handler interface {
	OnSignal(signal.Event) error
	OnFill(fill.Event) error
	UpdatePortfolioValue(common.DataEventHandler) error
	Snapshot(time.Time) holdings.Snapshot
	GetHoldings() *holdings.Holdings
	GetComplianceManager() *compliance.Manager
}

// SizeHandler is the interface to help size orders
type SizeHandler interface {
	SizeOrder(common.PortfolioReader, *order.Order) (*order.Order, error)
}

// RiskHandler may veto, split or pass through a sized order
type RiskHandler interface {
	RefineOrders(common.PortfolioReader, *order.Order) ([]*order.Order, error)
}
