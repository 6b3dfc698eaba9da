package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/eventbacktester/data"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/eventholder"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/exchange"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/statistics"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies"
)

var (
	// ErrAlreadyRan is returned when Run is called on a backtest that has
	// already started
	ErrAlreadyRan = errors.New("backtest has already ran")
	// ErrRunCancelled is returned when the run context is done before the
	// feed and queue are exhausted
	ErrRunCancelled = errors.New("backtest run cancelled")

	errDataHandlerUnset = errors.New("data handler unset")
	errStrategyUnset    = errors.New("strategy unset")
	errPortfolioUnset   = errors.New("portfolio unset")
	errExchangeUnset    = errors.New("exchange unset")
	errStatisticUnset   = errors.New("statistic unset")
	errEventQueueUnset  = errors.New("event queue unset")
	errNotRan           = errors.New("backtest has not been run")
)

// State is the position of the dispatch loop in its lifecycle
type State uint8

// Dispatch loop states
const (
	Idle State = iota
	Running
	Draining
	Done
)

// BackTest is the main holder of all backtesting functionality
type BackTest struct {
	MetaData   RunMetaData
	state      State
	counters   Counters
	eventQueue eventholder.EventHolder
	dataHolder data.Handler
	strategy   strategies.Handler
	portfolio  portfolio.Handler
	exchange   exchange.ExecutionHandler
	statistic  statistics.Handler
	m          sync.RWMutex
}

// RunMetaData contains details about a run such as when it was loaded
type RunMetaData struct {
	ID             uuid.UUID `json:"id"`
	Nickname       string    `json:"nickname"`
	Goal           string    `json:"goal,omitempty"`
	Strategy       string    `json:"strategy"`
	DateLoaded     time.Time `json:"date-loaded"`
	DateStarted    time.Time `json:"date-started"`
	DateEnded      time.Time `json:"date-ended"`
	FirstEventTime time.Time `json:"first-event-time"`
	LastEventTime  time.Time `json:"last-event-time"`
}

// Counters tallies the events dispatched by kind
type Counters struct {
	MarketEvents int64 `json:"market-events"`
	Signals      int64 `json:"signals"`
	Orders       int64 `json:"orders"`
	Fills        int64 `json:"fills"`
}

// Results holds the output of a finished run
type Results struct {
	MetaData   RunMetaData         `json:"metadata"`
	Counters   Counters            `json:"counters"`
	Statistics *statistics.Results `json:"statistics"`
}
