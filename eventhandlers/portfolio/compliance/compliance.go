package compliance

import (
	"fmt"
	"time"
)

// AddSnapshot records a fill. Fills at the same time as the latest snapshot
// are appended to it so there is one snapshot per timestamp
func (m *Manager) AddSnapshot(tt time.Time, o SnapshotOrder) {
	if n := len(m.Snapshots); n > 0 && m.Snapshots[n-1].Time.Equal(tt) {
		m.Snapshots[n-1].Orders = append(m.Snapshots[n-1].Orders, o)
		return
	}
	m.Snapshots = append(m.Snapshots, Snapshot{
		Offset: int64(len(m.Snapshots)) + 1,
		Time:   tt,
		Orders: []SnapshotOrder{o},
	})
}

// GetSnapshotAtTime returns the snapshot of orders at t time
func (m *Manager) GetSnapshotAtTime(t time.Time) (Snapshot, error) {
	for i := len(m.Snapshots) - 1; i >= 0; i-- {
		if t.Equal(m.Snapshots[i].Time) {
			return m.Snapshots[i], nil
		}
	}
	return Snapshot{}, fmt.Errorf("%w at %v", errSnapshotNotFound, t)
}

// GetLatestSnapshot returns the most recent snapshot
func (m *Manager) GetLatestSnapshot() (Snapshot, error) {
	if len(m.Snapshots) == 0 {
		return Snapshot{}, errSnapshotNotFound
	}
	return m.Snapshots[len(m.Snapshots)-1], nil
}

// TotalOrders returns how many fills have been recorded
func (m *Manager) TotalOrders() int {
	var total int
	for i := range m.Snapshots {
		total += len(m.Snapshots[i].Orders)
	}
	return total
}
