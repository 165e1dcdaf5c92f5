package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// Translate traduce una dirección virtual del proceso a dirección física.
// Si la página no está presente se produce un page fault y se carga, desalojando otra si hace falta.
// Los errores dejan el simulador sin cambios.
func (s *Simulator) Translate(pid uint, virtualAddress int) (int, error) {
	translation, err := s.TranslateDetailed(pid, virtualAddress)
	if err != nil {
		return -1, err
	}
	return translation.PhysicalAddress, nil
}

// TranslateDetailed es Translate pero devuelve todo lo que pasó durante la traducción.
func (s *Simulator) TranslateDetailed(pid uint, virtualAddress int) (models.Translation, error) {
	process, exists := s.processes[pid]
	if !exists {
		return models.Translation{}, fmt.Errorf("PID %d: %w", pid, models.ErrProcessNotFound)
	}
	if virtualAddress < 0 {
		return models.Translation{}, fmt.Errorf("PID %d dirección %d: %w", pid, virtualAddress, models.ErrInvalidAddress)
	}

	pageNumber := virtualAddress / s.pageSize
	offset := virtualAddress % s.pageSize
	if pageNumber >= process.PageCount {
		return models.Translation{}, fmt.Errorf("PID %d página %d (de %d): %w",
			pid, pageNumber, process.PageCount, models.ErrPageOutOfBounds)
	}

	translation := models.Translation{
		PID:            pid,
		VirtualAddress: virtualAddress,
		Page:           pageNumber,
		Offset:         offset,
		Time:           s.currentTime,
	}

	entry := &process.Pages[pageNumber]
	if !entry.Present {
		alloc, err := s.findFrame()
		if err != nil {
			return models.Translation{}, err
		}

		s.pageFaults++
		process.Metrics.PageFaults++
		slog.Info(fmt.Sprintf("## PID: %d - Page Fault - Página: %d", pid, pageNumber))

		s.bindFrame(alloc, pid, pageNumber)
		entry.Present = true
		entry.Frame = alloc.frame
		entry.LoadTime = models.At(s.currentTime)
		entry.Referenced = true

		translation.PageFault = true
		translation.Evicted = alloc.evicted
	}

	frame := &s.frames[entry.Frame]
	entry.LastAccess = models.At(s.currentTime)
	frame.LastAccess = models.At(s.currentTime)
	frame.Referenced = true

	s.totalAccesses++
	process.Metrics.Accesses++

	translation.Frame = entry.Frame
	translation.PhysicalAddress = entry.Frame*s.pageSize + offset

	slog.Debug("Dirección traducida",
		"pid", pid,
		"dir_logica", virtualAddress,
		"pagina", pageNumber,
		"desplazamiento", offset,
		"marco", translation.Frame,
		"dir_fisica", translation.PhysicalAddress,
		"page_fault", translation.PageFault)

	return translation, nil
}
