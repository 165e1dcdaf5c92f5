package models

// Metrics acumula los eventos de memoria de un proceso.
type Metrics struct {
	Accesses   int `json:"accesses"`
	PageFaults int `json:"page_faults"`
	Evictions  int `json:"evictions"` // páginas de este proceso que fueron desalojadas
}

type Process struct {
	PID       uint        `json:"pid"`
	Size      int         `json:"size"`
	PageCount int         `json:"page_count"`
	Pages     []PageEntry `json:"pages"`
	Metrics   Metrics     `json:"metrics"`
}

// PresentPages cuenta las páginas del proceso que están en memoria.
func (p *Process) PresentPages() int {
	count := 0
	for _, page := range p.Pages {
		if page.Present {
			count++
		}
	}
	return count
}

// Clone copia el proceso con su propia tabla de páginas.
func (p *Process) Clone() Process {
	clone := *p
	clone.Pages = make([]PageEntry, len(p.Pages))
	copy(clone.Pages, p.Pages)
	return clone
}
