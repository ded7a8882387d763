package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"messenger/observability"

	"github.com/shirou/gopsutil/process"
)

// Heartbeat periodically logs process health together with the sweep
// counters, so a quiet deployment still shows signs of life in the logs.
type Heartbeat struct {
	log      *slog.Logger
	monitor  *observability.SweepMonitor
	interval time.Duration
}

func NewHeartbeat(log *slog.Logger, monitor *observability.SweepMonitor, interval time.Duration) *Heartbeat {
	return &Heartbeat{log: log, monitor: monitor, interval: interval}
}

func (w *Heartbeat) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitor.Snapshot()
			w.log.Info("Heartbeat",
				"ramBytes", rss,
				"cpuPercent", cpu,
				"messagesRemoved", stats.MessagesRemoved,
				"chatsRemoved", stats.ChatsRemoved,
				"sweepErrors", stats.SweepErrors,
				"lastSweep", stats.LastSweep,
			)
		}
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
