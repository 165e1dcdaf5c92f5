package models

import "errors"

var (
	ErrProcessNotFound      = errors.New("proceso no encontrado")
	ErrPageOutOfBounds      = errors.New("página fuera de los límites del proceso")
	ErrInvalidAddress       = errors.New("dirección virtual inválida")
	ErrUnsupportedAlgorithm = errors.New("algoritmo de reemplazo no soportado")
	ErrInconsistentState    = errors.New("estado inconsistente entre frames y tablas de páginas")
	ErrInvalidSize          = errors.New("tamaño de proceso inválido")
	ErrDuplicatePID         = errors.New("ya existe un proceso con ese PID")
	ErrInvalidConfig        = errors.New("configuración de memoria inválida")
)

// IsRecoverable indica si el error deja el simulador intacto y se puede seguir con el próximo acceso.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrProcessNotFound) ||
		errors.Is(err, ErrPageOutOfBounds) ||
		errors.Is(err, ErrInvalidAddress)
}
