package monitor

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Health is a point-in-time runtime snapshot for the calling application
// to poll or expose.
type Health struct {
	CPUPercent        float64
	MemoryUsedPercent float64
	DatabaseOK        bool
	ReportCount       int
	LastRun           *RunStatus
}

// Health samples host and pipeline state. CPU usage is sampled over a
// 100ms interval to keep the call fast.
func (m *Monitor) Health(ctx context.Context) Health {
	h := Health{LastRun: m.LastRun()}

	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		m.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}
	if len(cpuPercent) > 0 {
		h.CPUPercent = cpuPercent[0]
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		m.log.Warn().Err(err).Msg("Failed to get memory statistics")
	} else {
		h.MemoryUsedPercent = memStat.UsedPercent
	}

	if m.db != nil {
		if err := m.db.QuickCheck(ctx); err != nil {
			m.log.Warn().Err(err).Msg("Report database consistency check failed")
		} else {
			h.DatabaseOK = true
		}
	}

	if count, err := m.repo.Count(); err != nil {
		m.log.Warn().Err(err).Msg("Failed to count stored reports")
	} else {
		h.ReportCount = count
	}

	return h
}
