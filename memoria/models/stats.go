package models

import "fmt"

type Stats struct {
	TotalAccesses int      `json:"total_accesses"`
	PageFaults    int      `json:"page_faults"`
	Evictions     int      `json:"evictions"`
	FaultRate     *float64 `json:"fault_rate"` // nil si todavía no hubo accesos
}

// NewStats calcula la tasa de fallos; sin accesos la tasa queda indefinida.
func NewStats(totalAccesses int, pageFaults int, evictions int) Stats {
	stats := Stats{
		TotalAccesses: totalAccesses,
		PageFaults:    pageFaults,
		Evictions:     evictions,
	}
	if totalAccesses > 0 {
		rate := float64(pageFaults) / float64(totalAccesses) * 100
		stats.FaultRate = &rate
	}
	return stats
}

func (s Stats) String() string {
	rate := "indefinida"
	if s.FaultRate != nil {
		rate = fmt.Sprintf("%.2f%%", *s.FaultRate)
	}
	return fmt.Sprintf("Accesos: %d; Page Faults: %d; Reemplazos: %d; Tasa de fallos: %s",
		s.TotalAccesses, s.PageFaults, s.Evictions, rate)
}
