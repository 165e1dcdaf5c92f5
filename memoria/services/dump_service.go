package services

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/helpers"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// WriteProcessTable escribe en formato texto la tabla de frames y la tabla de páginas de cada proceso.
func WriteProcessTable(writer io.Writer, processes []models.Process, frames []models.Frame) error {
	buffered := bufio.NewWriter(writer)

	fmt.Fprintf(buffered, "Memoria física: %d frames\n", len(frames))
	for _, frame := range frames {
		if frame.IsFree() {
			fmt.Fprintf(buffered, "  Frame %d: libre\n", frame.Index)
			continue
		}
		fmt.Fprintf(buffered, "  Frame %d: PID=%d página=%d carga=%s último_acceso=%s ref=%t\n",
			frame.Index, frame.Owner.PID, frame.Owner.Page, frame.LoadTime, frame.LastAccess, frame.Referenced)
	}

	for _, process := range processes {
		fmt.Fprintf(buffered, "\nProceso PID=%d | Tamaño=%d | Páginas=%d\n", process.PID, process.Size, process.PageCount)
		for i, page := range process.Pages {
			frame := "-"
			if index, present := page.FrameIndex(); present {
				frame = strconv.Itoa(index)
			}
			fmt.Fprintf(buffered, "  Página %d: presente=%t frame=%s modificada=%t ref=%t carga=%s último_acceso=%s\n",
				i, page.Present, frame, page.Modified, page.Referenced, page.LoadTime, page.LastAccess)
		}
	}

	return buffered.Flush()
}

// DumpToFile vuelca el estado completo de la memoria en un archivo dentro de dir y devuelve su ruta.
func (s *Simulator) DumpToFile(dir string) (string, error) {
	slog.Info("## Memory Dump solicitado")
	return s.dump(dir, "memoria", s.SnapshotProcesses())
}

// DumpProcessToFile vuelca la tabla de páginas de un único proceso junto con la tabla de frames.
func (s *Simulator) DumpProcessToFile(dir string, pid uint) (string, error) {
	process, exists := s.Process(pid)
	if !exists {
		return "", fmt.Errorf("PID %d: %w", pid, models.ErrProcessNotFound)
	}
	slog.Info(fmt.Sprintf("## PID: %d - Memory Dump solicitado", pid))
	return s.dump(dir, strconv.FormatUint(uint64(pid), 10), []models.Process{process})
}

func (s *Simulator) dump(dir string, label string, processes []models.Process) (string, error) {
	if err := helpers.CreateDirectory(dir); err != nil {
		return "", fmt.Errorf("error al crear directorio para dumps: %w", err)
	}

	dumpFilePath := filepath.Join(dir, helpers.GetDumpName(label))
	file, err := os.Create(dumpFilePath)
	if err != nil {
		slog.Error(fmt.Sprintf("error al crear archivo de dump: %v", err))
		return "", err
	}

	if err := s.writeDump(file, processes); err != nil {
		file.Close()
		return "", fmt.Errorf("fallo al escribir datos al archivo de dump: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("fallo al cerrar el archivo de dump: %w", err)
	}

	slog.Debug("Memory Dump completado", "archivo", dumpFilePath)
	return dumpFilePath, nil
}

// writeDump escribe la cabecera con reloj, algoritmo y estadísticas seguida de la tabla.
func (s *Simulator) writeDump(writer io.Writer, processes []models.Process) error {
	buffered := bufio.NewWriter(writer)
	if _, err := fmt.Fprintf(buffered, "Tiempo: %d | Algoritmo: %s | %s\n\n", s.currentTime, s.algorithm, s.Stats()); err != nil {
		return err
	}
	if err := WriteProcessTable(buffered, processes, s.SnapshotFrames()); err != nil {
		return err
	}
	return buffered.Flush()
}
