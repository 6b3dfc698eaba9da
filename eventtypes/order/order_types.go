package order

import (
	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

// Order is a concrete instruction awaiting execution
type Order struct {
	event.Base
	ID       uuid.UUID     `json:"id"`
	Action   common.Action `json:"action"`
	Quantity int64         `json:"quantity"`
}

// Event is an order event
type Event interface {
	common.EventHandler
	GetID() uuid.UUID
	GetAction() common.Action
	GetQuantity() int64
}
