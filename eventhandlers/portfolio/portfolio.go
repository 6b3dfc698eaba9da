package portfolio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/compliance"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/fill"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
	"github.com/thrasher-corp/eventbacktester/eventtypes/signal"
	"github.com/thrasher-corp/eventbacktester/log"
)

// Setup creates a portfolio manager instance and sets private fields
func Setup(sh SizeHandler, r RiskHandler, h *holdings.Holdings, q common.EventAppender) (*Portfolio, error) {
	if sh == nil {
		return nil, errSizeManagerUnset
	}
	if r == nil {
		return nil, errRiskManagerUnset
	}
	if h == nil {
		return nil, errHoldingsUnset
	}
	if q == nil {
		return nil, errEventQueueUnset
	}
	return &Portfolio{
		sizeManager: sh,
		riskManager: r,
		holdings:    h,
		queue:       q,
	}, nil
}

// OnSignal turns a signal into zero or more orders and places them on the
// event queue. Orders that cannot be sized are logged and skipped, an
// unrecognised action aborts the run
func (p *Portfolio) OnSignal(ev signal.Event) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	o, err := p.createOrderFromSignal(ev)
	if err != nil {
		return err
	}
	sized, err := p.sizeManager.SizeOrder(p.holdings, o)
	if err != nil {
		if errors.Is(err, common.ErrInvalidOrderKind) {
			return err
		}
		log.Warnf(log.Portfolio, "%v %v %v could not be sized: %v", ev.GetTime(), ev.GetTicker(), ev.GetAction(), err)
		return nil
	}
	if sized == nil {
		return fmt.Errorf("%s %w", ev.GetTicker(), errSizerReturnedNone)
	}
	refined, err := p.riskManager.RefineOrders(p.holdings, sized)
	if err != nil {
		if errors.Is(err, common.ErrInvalidOrderKind) {
			return err
		}
		log.Warnf(log.Portfolio, "%v %v %v could not be refined: %v", ev.GetTime(), ev.GetTicker(), ev.GetAction(), err)
		return nil
	}
	if len(refined) == 0 {
		log.Debugf(log.Portfolio, "%v %v %v produced no orders", ev.GetTime(), ev.GetTicker(), ev.GetAction())
		return nil
	}
	for i := range refined {
		if refined[i].Quantity == 0 {
			continue
		}
		if err = common.CheckTradeable(refined[i].Action); err != nil {
			return fmt.Errorf("%s %w", refined[i].Ticker, err)
		}
		p.queue.AppendEvent(refined[i])
	}
	return nil
}

// createOrderFromSignal maps the signal directly onto an order with no
// quantity. Sizing, including resolving exits, is left to the size manager
func (p *Portfolio) createOrderFromSignal(ev signal.Event) (*order.Order, error) {
	if !ev.GetAction().IsValid() {
		return nil, fmt.Errorf("%s %w '%v'", ev.GetTicker(), common.ErrInvalidOrderKind, ev.GetAction())
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &order.Order{
		Base: event.Base{
			Time:   ev.GetTime(),
			Ticker: ev.GetTicker(),
			Reason: ev.GetReason(),
		},
		ID:     id,
		Action: ev.GetAction(),
	}, nil
}

// OnFill applies a fill to the holdings and records it with the compliance
// manager. Position bookkeeping errors leave cash untouched so they are
// logged and skipped
func (p *Portfolio) OnFill(ev fill.Event) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	err := p.holdings.TradePosition(ev.GetAction(), ev.GetTicker(), ev.GetQuantity(), ev.GetFillPrice(), ev.GetCommission(), ev.GetTime())
	if err != nil {
		var pErr *holdings.PortfolioError
		if errors.As(err, &pErr) {
			log.Errorf(log.Portfolio, "%v skipping fill for order %v: %v", ev.GetTime(), ev.GetOrderID(), err)
			return nil
		}
		return err
	}
	p.compliance.AddSnapshot(ev.GetTime(), compliance.SnapshotOrder{
		OrderID:    ev.GetOrderID(),
		Ticker:     ev.GetTicker(),
		Action:     ev.GetAction(),
		Quantity:   ev.GetQuantity(),
		Price:      ev.GetFillPrice(),
		Commission: ev.GetCommission(),
		CashAfter:  p.holdings.Cash,
		Exchange:   ev.GetExchange(),
		FillOffset: ev.GetOffset(),
	})
	log.Debugf(log.Portfolio, "%v %v %v %v @ %v commission %v, cash %v",
		ev.GetTime(), ev.GetAction(), ev.GetQuantity(), ev.GetTicker(), ev.GetFillPrice(), ev.GetCommission(), p.holdings.Cash)
	return nil
}

// UpdatePortfolioValue re-marks every open position at the latest prices
func (p *Portfolio) UpdatePortfolioValue(ev common.DataEventHandler) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	return p.holdings.UpdateValue()
}

// Snapshot returns the portfolio totals at a point in time
func (p *Portfolio) Snapshot(tt time.Time) holdings.Snapshot {
	return p.holdings.Snapshot(tt)
}

// GetHoldings returns the underlying holdings
func (p *Portfolio) GetHoldings() *holdings.Holdings {
	return p.holdings
}

// GetComplianceManager returns the record of every fill applied
func (p *Portfolio) GetComplianceManager() *compliance.Manager {
	return &p.compliance
}
