package compliance

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

var errSnapshotNotFound = errors.New("snapshot not found")

// Manager holds a snapshot of the fills applied at each point in time
type Manager struct {
	Snapshots []Snapshot
}

// Snapshot contains the fills applied to the portfolio at a time
type Snapshot struct {
	Offset int64           `json:"offset"`
	Time   time.Time       `json:"timestamp"`
	Orders []SnapshotOrder `json:"orders"`
}

// SnapshotOrder is a copy of a fill along with the cash balance it left behind
type SnapshotOrder struct {
	OrderID    uuid.UUID       `json:"order-id"`
	Ticker     string          `json:"ticker"`
	Action     common.Action   `json:"action"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Commission decimal.Decimal `json:"commission"`
	CashAfter  decimal.Decimal `json:"cash-after"`
	Exchange   string          `json:"exchange"`
	FillOffset int64           `json:"fill-offset"`
}
