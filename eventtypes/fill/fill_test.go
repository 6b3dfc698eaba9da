package fill

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

func TestFill(t *testing.T) {
	t.Parallel()
	id := uuid.Must(uuid.NewV4())
	f := &Fill{
		Base:       event.Base{Ticker: "AMZN"},
		OrderID:    id,
		Action:     common.Buy,
		Quantity:   100,
		Exchange:   "SimulatedMkt",
		FillPrice:  decimal.RequireFromString("566.56"),
		Commission: decimal.NewFromInt(1),
	}
	var e Event = f
	assert.Equal(t, common.FillKind, e.Kind())
	assert.Equal(t, id, e.GetOrderID())
	assert.Equal(t, common.Buy, e.GetAction())
	assert.Equal(t, int64(100), e.GetQuantity())
	assert.Equal(t, "SimulatedMkt", e.GetExchange())
	assert.Equal(t, "566.56", e.GetFillPrice().String())
	assert.Equal(t, "1", e.GetCommission().String())
	assert.Equal(t, "56656", e.GetNotional().String())
}
