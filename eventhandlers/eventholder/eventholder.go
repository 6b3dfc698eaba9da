package eventholder

import (
	"github.com/thrasher-corp/eventbacktester/common"
)

// Reset returns struct to defaults
func (h *Holder) Reset() {
	h.Queue = nil
	h.nextOffset = 0
}

// AppendEvent adds an event to the back of the queue and stamps it with
// its sequence number
func (h *Holder) AppendEvent(e common.EventHandler) {
	if e == nil {
		return
	}
	h.nextOffset++
	e.SetOffset(h.nextOffset)
	h.Queue = append(h.Queue, e)
}

// NextEvent removes and returns the event at the front of the queue.
// It never blocks, returning false when the queue is empty
func (h *Holder) NextEvent() (common.EventHandler, bool) {
	if len(h.Queue) == 0 {
		return nil, false
	}
	e := h.Queue[0]
	h.Queue[0] = nil
	h.Queue = h.Queue[1:]
	return e, true
}

// Len returns the number of queued events
func (h *Holder) Len() int {
	return len(h.Queue)
}
