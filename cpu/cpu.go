package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/cpu/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/cpu/services"
	memoriaServices "github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/services"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/config"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/log"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/web/client"
)

const ConfigPath = "cpu/configs/cpu.json"

// Uso: ./bin/cpu [archivo de traza]. Sin argumento se usa trace_path del config.
func main() {
	config.InitConfig(ConfigPath, &models.CpuConfig)

	logPath, err := log.BuildLogPath("cpu")
	if err != nil {
		slog.Error("No se pudo construir el log path", "err", err)
		return
	}
	log.InitLogger(logPath, models.CpuConfig.LogLevel)

	tracePath := models.CpuConfig.TracePath
	if len(os.Args) > 1 {
		tracePath = os.Args[1]
	}

	var handshake string
	if err := client.DoJsonRequest(models.CpuConfig.PortMemory, models.CpuConfig.IpMemory, "GET", "memoria", nil, &handshake); err != nil {
		slog.Error(fmt.Sprintf("Memoria no responde: %v", err))
		os.Exit(1)
	}
	slog.Debug(handshake)

	if err := services.RequestMemoryConfig(models.CpuConfig); err != nil {
		os.Exit(1)
	}
	slog.Info(fmt.Sprintf("Memoria - Tamaño de página: %d - Algoritmo: %s", models.MemConfig.PageSize, models.MemConfig.Replacement))

	accesses, err := memoriaServices.LoadTrace(tracePath)
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}

	summary, err := services.RunTrace(models.CpuConfig, accesses)
	if err != nil {
		slog.Error(fmt.Sprintf("La traza se interrumpió: %v", err))
	}
	slog.Info(fmt.Sprintf("## Traza enviada - Traducidos: %d; Page Faults: %d; Rechazados: %d",
		summary.Translated, summary.PageFaults, summary.Rejected))

	stats, err := services.FetchStats(models.CpuConfig)
	if err != nil {
		slog.Error(fmt.Sprintf("No se pudieron obtener las estadísticas: %v", err))
		os.Exit(1)
	}
	slog.Info(fmt.Sprintf("## Estadísticas de Memoria - %s", stats))
}
