package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/cpu/models"
	memoriaModel "github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/web/client"
)

func RequestMemoryConfig(cpuConfig *models.Config) error {
	var config models.MemoryConfig
	err := client.DoJsonRequest(cpuConfig.PortMemory, cpuConfig.IpMemory, "GET", "config/memoria", nil, &config)
	if err != nil {
		slog.Error("Error solicitando configuración de Memoria", "error", err)
		return err
	}

	models.MemConfig = &config
	slog.Debug("MemConfig cargada", slog.Any("config", models.MemConfig))
	return nil
}

// TranslateAddress le pide a Memoria la traducción de una dirección lógica.
func TranslateAddress(cpuConfig *models.Config, access memoriaModel.Access) (memoriaModel.Translation, error) {
	var translation memoriaModel.Translation
	err := client.DoJsonRequest(cpuConfig.PortMemory, cpuConfig.IpMemory, "POST", "memoria/traducir", access, &translation)
	return translation, err
}

// RunTrace envía los accesos en orden. Los accesos que Memoria rechaza (4xx) se loguean y se saltean;
// cualquier otro error corta la ejecución.
func RunTrace(cpuConfig *models.Config, accesses []memoriaModel.Access) (models.TraceSummary, error) {
	var summary models.TraceSummary

	for index, access := range accesses {
		translation, err := TranslateAddress(cpuConfig, access)
		if err != nil {
			var statusErr *client.StatusError
			if errors.As(err, &statusErr) && statusErr.IsClientError() {
				slog.Warn(fmt.Sprintf("PID: %d - Acceso rechazado - Dirección Lógica: %d - %s", access.PID, access.Address, statusErr.Message))
				summary.Rejected++
				continue
			}
			return summary, fmt.Errorf("acceso %d: %w", index, err)
		}

		summary.Translated++
		if translation.PageFault {
			summary.PageFaults++
			slog.Info(fmt.Sprintf("PID: %d - Page Fault - Página: %d", translation.PID, translation.Page))
		}
		if translation.Evicted != nil {
			slog.Info(fmt.Sprintf("PID: %d - Reemplazo - PID: %d - Página: %d", translation.PID, translation.Evicted.PID, translation.Evicted.Page))
		}
		slog.Info(fmt.Sprintf("PID: %d - OBTENER MARCO - Página: %d - Marco: %d", translation.PID, translation.Page, translation.Frame))
		slog.Debug("Traducción", "pid", translation.PID, "logica", translation.VirtualAddress, "fisica", translation.PhysicalAddress, "tiempo", translation.Time)
	}

	return summary, nil
}

func FetchStats(cpuConfig *models.Config) (memoriaModel.Stats, error) {
	var stats memoriaModel.Stats
	err := client.DoJsonRequest(cpuConfig.PortMemory, cpuConfig.IpMemory, "GET", "memoria/estadisticas", nil, &stats)
	return stats, err
}
