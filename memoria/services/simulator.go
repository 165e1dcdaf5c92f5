package services

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// Simulator es el estado completo de la memoria simulada: reloj lógico, tabla de frames,
// procesos con sus tablas de páginas y estadísticas.
//
// No es seguro para uso concurrente; quien lo comparta entre goroutines tiene que serializar las llamadas.
type Simulator struct {
	pageSize    int
	memorySize  int
	currentTime int

	processes map[uint]*models.Process
	frames    []models.Frame

	totalAccesses int
	pageFaults    int
	evictions     int

	algorithm models.Algorithm
	policy    ReplacementPolicy
	rng       *rand.Rand
}

// NewSimulator valida la configuración y arma la memoria con todos los frames libres.
// Si no se indica algoritmo se usa FIFO.
func NewSimulator(config models.SimulatorConfig) (*Simulator, error) {
	if config.PageSize <= 0 || config.MemorySize <= 0 {
		return nil, fmt.Errorf("%w: tamaño de página %d y memoria %d deben ser positivos",
			models.ErrInvalidConfig, config.PageSize, config.MemorySize)
	}
	if config.MemorySize%config.PageSize != 0 {
		return nil, fmt.Errorf("%w: la memoria (%d) no es múltiplo del tamaño de página (%d)",
			models.ErrInvalidConfig, config.MemorySize, config.PageSize)
	}

	algorithm := config.Algorithm
	if algorithm == "" {
		algorithm = models.FIFO
	}

	simulator := &Simulator{
		pageSize:   config.PageSize,
		memorySize: config.MemorySize,
		processes:  make(map[uint]*models.Process),
		frames:     make([]models.Frame, config.MemorySize/config.PageSize),
		rng:        newRandom(config.RandomSeed),
	}
	for i := range simulator.frames {
		simulator.frames[i] = models.Frame{Index: i}
	}

	if err := simulator.SetAlgorithm(algorithm); err != nil {
		return nil, err
	}

	slog.Debug("Simulador inicializado",
		"tamaño_página", simulator.pageSize,
		"tamaño_memoria", simulator.memorySize,
		"frames", len(simulator.frames),
		"algoritmo", simulator.algorithm)
	return simulator, nil
}

func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// SetAlgorithm cambia la política de reemplazo. Un algoritmo no soportado no modifica la política actual.
func (s *Simulator) SetAlgorithm(algorithm models.Algorithm) error {
	parsed, err := models.ParseAlgorithm(string(algorithm))
	if err != nil {
		slog.Error("Algoritmo de reemplazo no soportado", "algoritmo", algorithm)
		return err
	}

	policy, err := NewReplacementPolicy(parsed, s.rng)
	if err != nil {
		return err
	}

	s.algorithm = parsed
	s.policy = policy
	slog.Info(fmt.Sprintf("## Algoritmo de reemplazo: %s", parsed))
	return nil
}

// AddProcess crea la tabla de páginas del proceso con todas sus páginas ausentes.
func (s *Simulator) AddProcess(pid uint, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: PID %d con tamaño %d", models.ErrInvalidSize, pid, size)
	}
	if _, exists := s.processes[pid]; exists {
		return fmt.Errorf("%w: PID %d", models.ErrDuplicatePID, pid)
	}

	pageCount := (size + s.pageSize - 1) / s.pageSize
	s.processes[pid] = &models.Process{
		PID:       pid,
		Size:      size,
		PageCount: pageCount,
		Pages:     make([]models.PageEntry, pageCount),
	}

	slog.Info(fmt.Sprintf("## PID: %d - Proceso Creado - Tamaño: %d", pid, size))
	slog.Debug("Tabla de páginas creada", "pid", pid, "páginas", pageCount)
	return nil
}

func (s *Simulator) PageSize() int {
	return s.pageSize
}

func (s *Simulator) MemorySize() int {
	return s.memorySize
}

func (s *Simulator) NumFrames() int {
	return len(s.frames)
}

func (s *Simulator) Algorithm() models.Algorithm {
	return s.algorithm
}

func (s *Simulator) CurrentTime() int {
	return s.currentTime
}

// SnapshotFrames devuelve una copia de la tabla de frames en orden de índice.
func (s *Simulator) SnapshotFrames() []models.Frame {
	frames := make([]models.Frame, len(s.frames))
	for i, frame := range s.frames {
		frames[i] = frame.Clone()
	}
	return frames
}

// SnapshotProcesses devuelve una copia de los procesos ordenados por PID.
func (s *Simulator) SnapshotProcesses() []models.Process {
	processes := make([]models.Process, 0, len(s.processes))
	for _, process := range s.processes {
		processes = append(processes, process.Clone())
	}
	sort.Slice(processes, func(i, j int) bool {
		return processes[i].PID < processes[j].PID
	})
	return processes
}

// Process devuelve una copia del proceso.
func (s *Simulator) Process(pid uint) (models.Process, bool) {
	process, exists := s.processes[pid]
	if !exists {
		return models.Process{}, false
	}
	return process.Clone(), true
}

func (s *Simulator) FreeFrames() int {
	count := 0
	for _, frame := range s.frames {
		if frame.IsFree() {
			count++
		}
	}
	return count
}

// NewSimulatorFromConfig arma el simulador con los parámetros del módulo y crea los procesos configurados.
func NewSimulatorFromConfig(config *models.Config) (*Simulator, error) {
	simulator, err := NewSimulator(config.SimulatorConfig())
	if err != nil {
		return nil, err
	}
	for _, process := range config.Processes {
		if err := simulator.AddProcess(process.PID, process.Size); err != nil {
			return nil, fmt.Errorf("proceso configurado: %w", err)
		}
	}
	return simulator, nil
}
