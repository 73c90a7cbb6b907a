package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemPercent    float64 `json:"mem_percent"`
	AllocMB       uint64  `json:"alloc_mb"`
	NumGC         uint32  `json:"num_gc"`
}

// handleSystemStatus handles system status requests
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	cpuPct, memPct := s.resourceUsage()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := SystemStatusResponse{
		Status:        "running",
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
		CPUPercent:    cpuPct,
		MemPercent:    memPct,
		AllocMB:       m.Alloc / 1024 / 1024,
		NumGC:         m.NumGC,
	}

	s.writeJSON(w, http.StatusOK, response)
}

// resourceUsage samples CPU and RAM usage. The 100ms CPU sample keeps the
// endpoint responsive for frequent polling.
func (s *Server) resourceUsage() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return cpuAvg, 0
	}

	return cpuAvg, memStat.UsedPercent
}
