package eventholder

import (
	"github.com/thrasher-corp/eventbacktester/common"
)

// Holder contains the event queue for backtester processing.
// It is owned by the dispatch loop and is not safe for concurrent use
type Holder struct {
	Queue      []common.EventHandler
	nextOffset int64
}

// EventHolder interface details what is expected of an event holder to perform
type EventHolder interface {
	common.EventAppender
	Reset()
	NextEvent() (common.EventHandler, bool)
	Len() int
}
