package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// Stats devuelve las estadísticas acumuladas. Sin accesos la tasa de fallos queda indefinida.
func (s *Simulator) Stats() models.Stats {
	return models.NewStats(s.totalAccesses, s.pageFaults, s.evictions)
}

// LogProcessMetrics deja en el log las métricas de cada proceso.
func (s *Simulator) LogProcessMetrics() {
	for _, process := range s.SnapshotProcesses() {
		slog.Info(fmt.Sprintf("## PID: %d - Métricas - Accesos: %d; Page Faults: %d; Reemplazos: %d; Páginas presentes: %d",
			process.PID, process.Metrics.Accesses, process.Metrics.PageFaults, process.Metrics.Evictions, process.PresentPages()))
	}
}

// CheckConsistency verifica que frames y tablas de páginas se apunten mutuamente y que no haya
// más páginas presentes que frames.
func (s *Simulator) CheckConsistency() error {
	owned := 0
	for i, frame := range s.frames {
		if frame.Index != i {
			return fmt.Errorf("%w: el frame en la posición %d tiene índice %d", models.ErrInconsistentState, i, frame.Index)
		}
		if frame.Owner == nil {
			continue
		}
		owned++

		process, exists := s.processes[frame.Owner.PID]
		if !exists {
			return fmt.Errorf("%w: el frame %d pertenece al PID %d que no existe", models.ErrInconsistentState, i, frame.Owner.PID)
		}
		if frame.Owner.Page < 0 || frame.Owner.Page >= process.PageCount {
			return fmt.Errorf("%w: el frame %d apunta a una página inexistente", models.ErrInconsistentState, i)
		}
		if index, present := process.Pages[frame.Owner.Page].FrameIndex(); !present || index != i {
			return fmt.Errorf("%w: la página %d del PID %d no apunta al frame %d",
				models.ErrInconsistentState, frame.Owner.Page, frame.Owner.PID, i)
		}
	}

	present := 0
	for _, process := range s.processes {
		present += process.PresentPages()
	}
	if present != owned || present > len(s.frames) {
		return fmt.Errorf("%w: %d páginas presentes y %d frames ocupados de %d",
			models.ErrInconsistentState, present, owned, len(s.frames))
	}
	return nil
}
