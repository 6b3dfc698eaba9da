package order

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/thrasher-corp/eventbacktester/common"
)

// Kind returns OrderKind
func (o *Order) Kind() common.Kind {
	return common.OrderKind
}

// GetID returns the order ID
func (o *Order) GetID() uuid.UUID {
	return o.ID
}

// GetAction returns the direction
func (o *Order) GetAction() common.Action {
	return o.Action
}

// GetQuantity returns the number of units
func (o *Order) GetQuantity() int64 {
	return o.Quantity
}

// WithQuantity returns a copy of the order for a new number of units.
// The receiver is left untouched
func (o *Order) WithQuantity(q int64) (*Order, error) {
	if q < 0 {
		return nil, fmt.Errorf("%w: %d", common.ErrNegativeQuantity, q)
	}
	resp := *o
	resp.Quantity = q
	return &resp, nil
}

// WithAction returns a copy of the order for a new direction.
// The receiver is left untouched
func (o *Order) WithAction(a common.Action) *Order {
	resp := *o
	resp.Action = a
	return &resp
}
