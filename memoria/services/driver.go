package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/list"
)

// Step procesa un acceso: lo traduce y avanza el reloj lógico en uno, haya o no page fault.
// Si la traducción falla el reloj no avanza.
func (s *Simulator) Step(access models.Access) (models.Translation, error) {
	translation, err := s.TranslateDetailed(access.PID, access.Address)
	if err != nil {
		return translation, err
	}
	s.currentTime++
	return translation, nil
}

// Run procesa los accesos en orden. Los errores recuperables (proceso inexistente, dirección inválida,
// página fuera de rango) se registran en Failures y se sigue con el próximo acceso; cualquier otro error
// corta la corrida y se devuelve junto con lo procesado hasta ese momento.
func (s *Simulator) Run(accesses []models.Access) (models.RunResult, error) {
	pending := list.NewArrayList(accesses...)
	result := models.RunResult{
		Translations: make([]models.Translation, 0, len(accesses)),
		Failures:     make([]models.AccessFailure, 0),
	}

	for index := 0; !pending.IsEmpty(); index++ {
		access, _ := pending.Dequeue()

		translation, err := s.Step(access)
		if err == nil {
			result.Translations = append(result.Translations, translation)
			continue
		}

		if !models.IsRecoverable(err) {
			slog.Error("Corrida abortada", "acceso", index, "pid", access.PID, "direccion", access.Address, "error", err)
			return result, fmt.Errorf("acceso %d: %w", index, err)
		}

		slog.Warn("Acceso descartado", "acceso", index, "pid", access.PID, "direccion", access.Address, "error", err)
		result.Failures = append(result.Failures, models.AccessFailure{
			Index:  index,
			Access: access,
			Err:    err,
			Reason: err.Error(),
		})
	}

	slog.Info(fmt.Sprintf("## Corrida finalizada - %s", s.Stats()))
	return result, nil
}
