package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// allocation es el frame elegido para una página que produjo un page fault.
// Si hubo que desalojar, victim apunta a la entrada de la página que deja de estar presente.
type allocation struct {
	frame   int
	evicted *models.FrameOwner
	victim  *models.Process
}

// findFrame elige un frame sin modificar nada: el primer frame libre o, si no hay,
// la víctima de la política de reemplazo.
func (s *Simulator) findFrame() (allocation, error) {
	for i, frame := range s.frames {
		if frame.IsFree() {
			return allocation{frame: i}, nil
		}
	}

	victim := s.policy.SelectVictim(s.frames)
	if victim < 0 || victim >= len(s.frames) {
		return allocation{}, s.inconsistency("la política %s eligió el frame %d de %d", s.algorithm, victim, len(s.frames))
	}

	owner := s.frames[victim].Owner
	if owner == nil {
		return allocation{}, s.inconsistency("el frame víctima %d no tiene dueño", victim)
	}

	process, exists := s.processes[owner.PID]
	if !exists {
		return allocation{}, s.inconsistency("el frame %d pertenece al PID %d que no existe", victim, owner.PID)
	}
	if owner.Page < 0 || owner.Page >= process.PageCount {
		return allocation{}, s.inconsistency("el frame %d apunta a la página %d del PID %d que no existe", victim, owner.Page, owner.PID)
	}
	if frame, present := process.Pages[owner.Page].FrameIndex(); !present || frame != victim {
		return allocation{}, s.inconsistency("la página %d del PID %d no apunta al frame %d", owner.Page, owner.PID, victim)
	}

	evicted := *owner
	return allocation{frame: victim, evicted: &evicted, victim: process}, nil
}

// bindFrame desaloja a la víctima (si la hay) y deja el frame a nombre de la nueva página.
func (s *Simulator) bindFrame(alloc allocation, pid uint, page int) {
	if alloc.evicted != nil {
		alloc.victim.Pages[alloc.evicted.Page].Present = false
		alloc.victim.Metrics.Evictions++
		s.evictions++
		slog.Info(fmt.Sprintf("## PID: %d - Reemplazo - Frame: %d - Sale PID: %d Página: %d - Entra Página: %d",
			pid, alloc.frame, alloc.evicted.PID, alloc.evicted.Page, page))
	}

	s.frames[alloc.frame] = models.Frame{
		Index:      alloc.frame,
		Owner:      &models.FrameOwner{PID: pid, Page: page},
		LoadTime:   models.At(s.currentTime),
		LastAccess: models.At(s.currentTime),
		Referenced: true,
	}
}

func (s *Simulator) inconsistency(format string, args ...any) error {
	err := fmt.Errorf("%w: %s", models.ErrInconsistentState, fmt.Sprintf(format, args...))
	slog.Error(err.Error())
	return err
}
