package observability

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats describes the running server process.
type ProcessStats struct {
	PID        int32   `json:"pid"`
	Status     string  `json:"status,omitempty"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	Goroutines int     `json:"goroutines"`
}

// SelfStats samples memory and CPU usage of the current process.
func SelfStats() (ProcessStats, error) {
	stats := ProcessStats{PID: int32(os.Getpid()), Goroutines: runtime.NumGoroutine()}

	p, err := process.NewProcess(stats.PID)
	if err != nil {
		return stats, err
	}
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return stats, err
	}
	stats.RSSBytes = memInfo.RSS

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return stats, err
	}
	stats.CPUPercent = cpuPercent

	if status, err := p.Status(); err == nil {
		stats.Status = status
	}
	return stats, nil
}
