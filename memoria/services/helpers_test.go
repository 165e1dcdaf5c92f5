package services

import (
	"testing"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

const (
	testPageSize   = 4096
	testMemorySize = 16384
)

func newTestSimulator(t *testing.T, algorithm models.Algorithm) *Simulator {
	t.Helper()
	simulator, err := NewSimulator(models.SimulatorConfig{
		PageSize:   testPageSize,
		MemorySize: testMemorySize,
		Algorithm:  algorithm,
		RandomSeed: 42,
	})
	if err != nil {
		t.Fatalf("Failed to create simulator: %v", err)
	}
	return simulator
}

func addProcess(t *testing.T, simulator *Simulator, pid uint, size int) {
	t.Helper()
	if err := simulator.AddProcess(pid, size); err != nil {
		t.Fatalf("Failed to add process %d: %v", pid, err)
	}
}

func runAccesses(t *testing.T, simulator *Simulator, accesses ...models.Access) models.RunResult {
	t.Helper()
	result, err := simulator.Run(accesses)
	if err != nil {
		t.Fatalf("Expected no error running accesses, got: %v", err)
	}
	if len(result.Failures) != 0 {
		t.Fatalf("Expected no failures, got: %+v", result.Failures)
	}
	return result
}

// pageAccess arma el acceso a la primera dirección de la página.
func pageAccess(pid uint, page int) models.Access {
	return models.Access{PID: pid, Address: page * testPageSize}
}

func pageOf(t *testing.T, simulator *Simulator, pid uint, page int) models.PageEntry {
	t.Helper()
	process, exists := simulator.Process(pid)
	if !exists {
		t.Fatalf("Expected process %d to exist", pid)
	}
	return process.Pages[page]
}

func assertConsistent(t *testing.T, simulator *Simulator) {
	t.Helper()
	if err := simulator.CheckConsistency(); err != nil {
		t.Fatalf("Expected consistent state, got: %v", err)
	}
}
