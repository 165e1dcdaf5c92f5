package main

import (
	"fmt"
	"log/slog"
	"os"

	memoryHandler "github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/handlers"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/helpers"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/services"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/web/server"
)

const (
	// Se puede pisar pasando la ruta como primer argumento.
	ConfigPath = "memoria/configs/memoria.json"
	LogPath    = "./logs/memoria.log"
)

func main() {
	configPath := ConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if err := helpers.InitMemory(configPath, LogPath); err != nil {
		slog.Error(fmt.Sprintf("error al inicializar la memoria: %v", err))
		panic(err)
	}

	simulator, err := services.NewSimulatorFromConfig(models.MemoryConfig)
	if err != nil {
		slog.Error(fmt.Sprintf("error al inicializar la memoria: %v", err))
		panic(err)
	}
	slog.Debug("Memoria inicializada", "frames", simulator.NumFrames(), "libres", simulator.FreeFrames())

	if models.MemoryConfig.TracePath != "" {
		runTrace(simulator, models.MemoryConfig.TracePath)
	}

	mux := memoryHandler.RegisterRoutes(simulator, models.MemoryConfig.DumpPath)
	slog.Info("Memoria lista")

	err = server.InitServer(models.MemoryConfig.PortMemory, mux)
	if err != nil {
		slog.Error(fmt.Sprintf("error initializing server: %v", err))
		panic(err)
	}
}

// runTrace procesa la traza inicial antes de levantar el servidor.
func runTrace(simulator *services.Simulator, tracePath string) {
	accesses, err := services.LoadTrace(tracePath)
	if err != nil {
		slog.Error(err.Error())
		return
	}

	result, err := simulator.Run(accesses)
	if err != nil {
		slog.Error(fmt.Sprintf("la traza %s no se pudo completar: %v", tracePath, err))
	}
	slog.Info(fmt.Sprintf("## Traza procesada - Traducciones: %d; Descartados: %d", len(result.Translations), len(result.Failures)))

	slog.Info(fmt.Sprintf("## Estadísticas - %s", simulator.Stats()))
	simulator.LogProcessMetrics()
}
