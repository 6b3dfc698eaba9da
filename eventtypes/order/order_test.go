package order

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

func TestOrder(t *testing.T) {
	t.Parallel()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	o := &Order{
		Base:   event.Base{Ticker: "MSFT"},
		ID:     id,
		Action: common.Exit,
	}
	var e Event = o
	assert.Equal(t, common.OrderKind, e.Kind())
	assert.Equal(t, id, e.GetID())
	assert.Equal(t, common.Exit, e.GetAction())
	assert.Zero(t, e.GetQuantity())
}

func TestWithQuantity(t *testing.T) {
	t.Parallel()
	o := &Order{Base: event.Base{Ticker: "MSFT"}, Action: common.Buy}
	_, err := o.WithQuantity(-1)
	assert.ErrorIs(t, err, common.ErrNegativeQuantity)

	sized, err := o.WithQuantity(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), sized.Quantity)
	assert.Zero(t, o.Quantity, "original order must not be mutated")
	assert.Equal(t, "MSFT", sized.Ticker)
}

func TestWithAction(t *testing.T) {
	t.Parallel()
	o := &Order{Action: common.Exit}
	resolved := o.WithAction(common.Sell)
	assert.Equal(t, common.Sell, resolved.Action)
	assert.Equal(t, common.Exit, o.Action)
}
