package models

import (
	"fmt"
	"strings"
)

// Algorithm es el algoritmo de reemplazo de páginas.
type Algorithm string

const (
	FIFO   Algorithm = "FIFO"
	LRU    Algorithm = "LRU"
	RANDOM Algorithm = "RANDOM"
	// CLOCK y CUSTOM se reconocen por nombre pero no están implementados.
	CLOCK  Algorithm = "CLOCK"
	CUSTOM Algorithm = "CUSTOM"
)

// ParseAlgorithm normaliza el nombre y devuelve ErrUnsupportedAlgorithm si no es FIFO, LRU o RANDOM.
func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	switch algorithm {
	case FIFO, LRU, RANDOM:
		return algorithm, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}
