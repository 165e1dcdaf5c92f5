package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/services"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/web/server"
)

// El simulador no es seguro para uso concurrente y net/http atiende cada request en su goroutine.
var simulatorLock sync.Mutex

type ProcessRequest struct {
	PID  uint `json:"pid"`
	Size int  `json:"size"`
}

type AlgorithmRequest struct {
	Algorithm string `json:"algorithm"`
}

type AlgorithmResponse struct {
	Algorithm models.Algorithm `json:"algorithm"`
}

type FramesResponse struct {
	Free   int            `json:"free"`
	Frames []models.Frame `json:"frames"`
}

type DumpResponse struct {
	Path string `json:"path"`
}

// MemoryConfigHandler devuelve la configuración del módulo con el algoritmo que está en uso,
// que puede haber cambiado desde el arranque.
func MemoryConfigHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var config models.Config
		if models.MemoryConfig != nil {
			config = *models.MemoryConfig
		}

		simulatorLock.Lock()
		config.PageSize = simulator.PageSize()
		config.MemorySize = simulator.MemorySize()
		config.Replacement = string(simulator.Algorithm())
		simulatorLock.Unlock()

		server.SendJsonResponse(w, config)
	}
}

// CreateProcessHandler crea la tabla de páginas de un proceso nuevo.
func CreateProcessHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ProcessRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		simulatorLock.Lock()
		err := simulator.AddProcess(request.PID, request.Size)
		process, _ := simulator.Process(request.PID)
		simulatorLock.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}
		server.SendJsonWithStatus(w, http.StatusCreated, process)
	}
}

// TranslateHandler procesa un único acceso y devuelve la traducción. Cada acceso avanza el reloj lógico.
func TranslateHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var access models.Access
		if !decodeRequest(w, r, &access) {
			return
		}

		simulatorLock.Lock()
		translation, err := simulator.Step(access)
		simulatorLock.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}
		server.SendJsonResponse(w, translation)
	}
}

// RunHandler procesa una lista de accesos como una corrida completa.
func RunHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var accesses []models.Access
		if !decodeRequest(w, r, &accesses) {
			return
		}

		simulatorLock.Lock()
		result, err := simulator.Run(accesses)
		simulatorLock.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}
		server.SendJsonResponse(w, result)
	}
}

func GetAlgorithmHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		simulatorLock.Lock()
		algorithm := simulator.Algorithm()
		simulatorLock.Unlock()

		server.SendJsonResponse(w, AlgorithmResponse{Algorithm: algorithm})
	}
}

// SetAlgorithmHandler cambia la política de reemplazo. Las páginas cargadas conservan sus marcas de tiempo.
func SetAlgorithmHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var request AlgorithmRequest
		if !decodeRequest(w, r, &request) {
			return
		}

		simulatorLock.Lock()
		err := simulator.SetAlgorithm(models.Algorithm(request.Algorithm))
		algorithm := simulator.Algorithm()
		simulatorLock.Unlock()

		if err != nil {
			sendError(w, err)
			return
		}
		server.SendJsonResponse(w, AlgorithmResponse{Algorithm: algorithm})
	}
}

func FramesHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		simulatorLock.Lock()
		response := FramesResponse{
			Free:   simulator.FreeFrames(),
			Frames: simulator.SnapshotFrames(),
		}
		simulatorLock.Unlock()

		server.SendJsonResponse(w, response)
	}
}

// ProcessesHandler devuelve todos los procesos, o uno solo si se pasa ?pid=N.
func ProcessesHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		pidStr := r.URL.Query().Get("pid")
		if pidStr == "" {
			simulatorLock.Lock()
			processes := simulator.SnapshotProcesses()
			simulatorLock.Unlock()

			server.SendJsonResponse(w, processes)
			return
		}

		pid, err := parsePID(pidStr)
		if err != nil {
			server.SendJsonError(w, http.StatusBadRequest, err)
			return
		}

		simulatorLock.Lock()
		process, exists := simulator.Process(pid)
		simulatorLock.Unlock()

		if !exists {
			sendError(w, fmt.Errorf("PID %d: %w", pid, models.ErrProcessNotFound))
			return
		}
		server.SendJsonResponse(w, process)
	}
}

func StatsHandler(simulator *services.Simulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		simulatorLock.Lock()
		stats := simulator.Stats()
		simulatorLock.Unlock()

		server.SendJsonResponse(w, stats)
	}
}

// DumpHandler escribe un Memory Dump en dumpPath. Con ?pid=N solo se vuelca ese proceso.
func DumpHandler(simulator *services.Simulator, dumpPath string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		pidStr := r.URL.Query().Get("pid")
		if pidStr == "" {
			simulatorLock.Lock()
			path, err := simulator.DumpToFile(dumpPath)
			simulatorLock.Unlock()
			sendDump(w, path, err)
			return
		}

		pid, err := parsePID(pidStr)
		if err != nil {
			server.SendJsonError(w, http.StatusBadRequest, err)
			return
		}

		simulatorLock.Lock()
		path, err := simulator.DumpProcessToFile(dumpPath, pid)
		simulatorLock.Unlock()
		sendDump(w, path, err)
	}
}

func sendDump(w http.ResponseWriter, path string, err error) {
	if err != nil {
		sendError(w, err)
		return
	}
	server.SendJsonResponse(w, DumpResponse{Path: path})
}

func decodeRequest(w http.ResponseWriter, r *http.Request, request any) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		slog.Error("Request inválida", "ruta", r.URL.Path, "error", err)
		server.SendJsonError(w, http.StatusBadRequest, fmt.Errorf("request inválida: %w", err))
		return false
	}
	return true
}

func parsePID(pidStr string) (uint, error) {
	pid, err := strconv.ParseUint(pidStr, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("PID inválido %q", pidStr)
	}
	return uint(pid), nil
}

// sendError traduce los errores del simulador a códigos HTTP.
func sendError(w http.ResponseWriter, err error) {
	server.SendJsonError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrProcessNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrPageOutOfBounds),
		errors.Is(err, models.ErrInvalidAddress),
		errors.Is(err, models.ErrInvalidSize),
		errors.Is(err, models.ErrUnsupportedAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicatePID):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
