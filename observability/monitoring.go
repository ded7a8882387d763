// Package observability keeps lightweight runtime counters for the
// background sweep, read periodically by the heartbeat worker.
package observability

import (
	"sync/atomic"
	"time"
)

// SweepStats is a snapshot of the retention sweep counters.
type SweepStats struct {
	MessagesRemoved uint64    `json:"messages_removed"`
	ChatsRemoved    uint64    `json:"chats_removed"`
	SweepErrors     uint64    `json:"sweep_errors"`
	LastSweep       time.Time `json:"last_sweep"`
}

// SweepMonitor accumulates sweep counters on atomics so the sweeper and
// the heartbeat reader never contend on a lock.
type SweepMonitor struct {
	messagesRemoved atomic.Uint64
	chatsRemoved    atomic.Uint64
	sweepErrors     atomic.Uint64
	lastSweep       atomic.Int64 // unix nanos
}

func NewSweepMonitor() *SweepMonitor {
	return &SweepMonitor{}
}

func (m *SweepMonitor) MessageRemoved() { m.messagesRemoved.Add(1) }
func (m *SweepMonitor) ChatRemoved()    { m.chatsRemoved.Add(1) }
func (m *SweepMonitor) SweepError()     { m.sweepErrors.Add(1) }

func (m *SweepMonitor) SweepFinished(at time.Time) {
	m.lastSweep.Store(at.UnixNano())
}

func (m *SweepMonitor) Snapshot() SweepStats {
	stats := SweepStats{
		MessagesRemoved: m.messagesRemoved.Load(),
		ChatsRemoved:    m.chatsRemoved.Load(),
		SweepErrors:     m.sweepErrors.Load(),
	}
	if nanos := m.lastSweep.Load(); nanos > 0 {
		stats.LastSweep = time.Unix(0, nanos).UTC()
	}
	return stats
}
