package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/data"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/eventholder"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/exchange"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/statistics"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies"
	"github.com/thrasher-corp/eventbacktester/eventtypes/fill"
	"github.com/thrasher-corp/eventbacktester/eventtypes/order"
	"github.com/thrasher-corp/eventbacktester/eventtypes/signal"
	"github.com/thrasher-corp/eventbacktester/log"
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Draining:
		return "DRAINING"
	case Done:
		return "DONE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// New assembles a backtest from its collaborators. The queue must be the
// same one the portfolio places orders on
func New(d data.Handler, s strategies.Handler, p portfolio.Handler, ex exchange.ExecutionHandler, st statistics.Handler, q eventholder.EventHolder) (*BackTest, error) {
	if d == nil {
		return nil, errDataHandlerUnset
	}
	if s == nil {
		return nil, errStrategyUnset
	}
	if p == nil {
		return nil, errPortfolioUnset
	}
	if ex == nil {
		return nil, errExchangeUnset
	}
	if st == nil {
		return nil, errStatisticUnset
	}
	if q == nil {
		return nil, errEventQueueUnset
	}
	bt := &BackTest{
		dataHolder: d,
		strategy:   s,
		portfolio:  p,
		exchange:   ex,
		statistic:  st,
		eventQueue: q,
	}
	if err := bt.SetupMetaData(); err != nil {
		return nil, err
	}
	bt.MetaData.Strategy = s.Name()
	return bt, nil
}

// SetupMetaData assigns the run ID and load time once
func (bt *BackTest) SetupMetaData() error {
	if bt == nil {
		return common.ErrNilPointer
	}
	bt.m.Lock()
	defer bt.m.Unlock()
	if !bt.MetaData.ID.IsNil() {
		return nil
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	bt.MetaData.ID = id
	bt.MetaData.DateLoaded = time.Now()
	return nil
}

// State returns the current dispatch loop state
func (bt *BackTest) State() State {
	if bt == nil {
		return Idle
	}
	bt.m.RLock()
	defer bt.m.RUnlock()
	return bt.state
}

// IsRunning returns whether the dispatch loop is processing events
func (bt *BackTest) IsRunning() bool {
	s := bt.State()
	return s == Running || s == Draining
}

// HasRan returns whether the run has finished
func (bt *BackTest) HasRan() bool {
	return bt.State() == Done
}

// GetCounters returns the number of events dispatched by kind
func (bt *BackTest) GetCounters() Counters {
	bt.m.RLock()
	defer bt.m.RUnlock()
	return bt.counters
}

// GetPortfolio returns the portfolio handler
func (bt *BackTest) GetPortfolio() portfolio.Handler {
	return bt.portfolio
}

func (bt *BackTest) setState(s State) {
	bt.m.Lock()
	bt.state = s
	bt.m.Unlock()
}

// Run replays the data feed to exhaustion. The event queue is always
// drained before the feed is asked for the next market event, so every
// signal raised by a market event is ordered, filled and applied to the
// portfolio before the following market event is seen.
// The context is checked between events
func (bt *BackTest) Run(ctx context.Context) error {
	if bt == nil {
		return common.ErrNilPointer
	}
	bt.m.Lock()
	if bt.state != Idle {
		bt.m.Unlock()
		return ErrAlreadyRan
	}
	bt.state = Running
	bt.MetaData.DateStarted = time.Now()
	bt.m.Unlock()
	log.Infof(log.Backtester, "running backtest %v using strategy %v", bt.MetaData.ID, bt.MetaData.Strategy)

	err := bt.dispatch(ctx)

	bt.m.Lock()
	bt.state = Done
	bt.MetaData.DateEnded = time.Now()
	bt.m.Unlock()
	if err != nil {
		return err
	}
	log.Infof(log.Backtester, "backtest %v complete: %d market events, %d signals, %d orders, %d fills",
		bt.MetaData.ID,
		bt.counters.MarketEvents,
		bt.counters.Signals,
		bt.counters.Orders,
		bt.counters.Fills)
	return nil
}

func (bt *BackTest) dispatch(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w %w", ErrRunCancelled, err)
		}
		ev, ok := bt.eventQueue.NextEvent()
		if ok {
			if err := bt.handleEvent(ev); err != nil {
				return err
			}
			continue
		}
		if bt.State() == Draining {
			return nil
		}
		d, err := bt.dataHolder.Next()
		if err != nil {
			if errors.Is(err, data.ErrFeedExhausted) {
				return nil
			}
			return err
		}
		bt.eventQueue.AppendEvent(d)
		if !bt.dataHolder.HasMore() {
			bt.setState(Draining)
		}
	}
}

// handleEvent routes an event by its kind. The concrete type must match
// the kind it reports
func (bt *BackTest) handleEvent(ev common.EventHandler) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	var err error
	switch ev.Kind() {
	case common.MarketKind:
		d, ok := ev.(common.DataEventHandler)
		if !ok {
			return unknownEvent(ev)
		}
		err = bt.processMarketEvent(d)
	case common.SignalKind:
		s, ok := ev.(signal.Event)
		if !ok {
			return unknownEvent(ev)
		}
		bt.count(&bt.counters.Signals)
		err = bt.portfolio.OnSignal(s)
	case common.OrderKind:
		o, ok := ev.(order.Event)
		if !ok {
			return unknownEvent(ev)
		}
		err = bt.processOrderEvent(o)
	case common.FillKind:
		f, ok := ev.(fill.Event)
		if !ok {
			return unknownEvent(ev)
		}
		bt.count(&bt.counters.Fills)
		err = bt.portfolio.OnFill(f)
	default:
		return unknownEvent(ev)
	}
	if err != nil {
		return fmt.Errorf("%v event %v at %v: %w", ev.Kind(), ev.GetTicker(), ev.GetTime(), err)
	}
	return nil
}

func unknownEvent(ev common.EventHandler) error {
	return fmt.Errorf("%w %v %T %v at %v", common.ErrUnknownEventKind, ev.Kind(), ev, ev.GetTicker(), ev.GetTime())
}

func (bt *BackTest) count(c *int64) {
	bt.m.Lock()
	*c++
	bt.m.Unlock()
}

func (bt *BackTest) processMarketEvent(ev common.DataEventHandler) error {
	bt.count(&bt.counters.MarketEvents)
	bt.m.Lock()
	if bt.MetaData.FirstEventTime.IsZero() {
		bt.MetaData.FirstEventTime = ev.GetTime()
	}
	bt.MetaData.LastEventTime = ev.GetTime()
	bt.m.Unlock()

	if err := bt.strategy.CalculateSignals(ev, bt.eventQueue); err != nil {
		return err
	}
	if err := bt.portfolio.UpdatePortfolioValue(ev); err != nil {
		return err
	}
	return bt.statistic.Update(ev.GetTime(), bt.portfolio.Snapshot(ev.GetTime()))
}

func (bt *BackTest) processOrderEvent(ev order.Event) error {
	bt.count(&bt.counters.Orders)
	f, err := bt.exchange.ExecuteOrder(ev)
	if err != nil {
		return err
	}
	bt.eventQueue.AppendEvent(f)
	return nil
}

// Results returns the statistics of a finished run with its metadata
func (bt *BackTest) Results() (*Results, error) {
	if bt == nil {
		return nil, common.ErrNilPointer
	}
	if !bt.HasRan() {
		return nil, errNotRan
	}
	stats, err := bt.statistic.GetResults()
	if err != nil {
		return nil, err
	}
	bt.m.RLock()
	defer bt.m.RUnlock()
	return &Results{
		MetaData:   bt.MetaData,
		Counters:   bt.counters,
		Statistics: stats,
	}, nil
}
