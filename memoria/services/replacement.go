package services

import (
	"fmt"
	"math/rand/v2"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// ReplacementPolicy elige el frame víctima cuando no quedan frames libres.
// Sólo se llama con todos los frames ocupados y no modifica la tabla.
type ReplacementPolicy interface {
	Algorithm() models.Algorithm
	SelectVictim(frames []models.Frame) int
}

// NewReplacementPolicy devuelve la política del algoritmo. rng sólo lo usa RANDOM.
func NewReplacementPolicy(algorithm models.Algorithm, rng *rand.Rand) (ReplacementPolicy, error) {
	switch algorithm {
	case models.FIFO:
		return fifoPolicy{}, nil
	case models.LRU:
		return lruPolicy{}, nil
	case models.RANDOM:
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		return randomPolicy{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedAlgorithm, algorithm)
	}
}

// fifoPolicy desaloja el frame cargado hace más tiempo.
type fifoPolicy struct{}

func (fifoPolicy) Algorithm() models.Algorithm {
	return models.FIFO
}

func (fifoPolicy) SelectVictim(frames []models.Frame) int {
	return oldestFrame(frames, func(frame models.Frame) models.Tick {
		return frame.LoadTime
	})
}

// lruPolicy desaloja el frame accedido hace más tiempo.
type lruPolicy struct{}

func (lruPolicy) Algorithm() models.Algorithm {
	return models.LRU
}

func (lruPolicy) SelectVictim(frames []models.Frame) int {
	return oldestFrame(frames, func(frame models.Frame) models.Tick {
		return frame.LastAccess
	})
}

type randomPolicy struct {
	rng *rand.Rand
}

func (randomPolicy) Algorithm() models.Algorithm {
	return models.RANDOM
}

func (p randomPolicy) SelectVictim(frames []models.Frame) int {
	if len(frames) == 0 {
		return -1
	}
	return p.rng.IntN(len(frames))
}

// oldestFrame recorre de izquierda a derecha; ante empate gana el índice más bajo.
func oldestFrame(frames []models.Frame, key func(models.Frame) models.Tick) int {
	if len(frames) == 0 {
		return -1
	}
	victim := 0
	for i := 1; i < len(frames); i++ {
		if key(frames[i]).Before(key(frames[victim])) {
			victim = i
		}
	}
	return victim
}
