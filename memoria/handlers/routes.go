package handlers

import (
	"net/http"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/services"
	webHandlers "github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/web/handlers"
)

// RegisterRoutes arma el mux con todos los endpoints del módulo de memoria.
func RegisterRoutes(simulator *services.Simulator, dumpPath string) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", webHandlers.HandshakeHandler("Bienvenido al módulo de Memoria"))
	mux.HandleFunc("GET /memoria", webHandlers.HandshakeHandler("Memoria en funcionamiento 🚀"))
	mux.HandleFunc("GET /config/memoria", MemoryConfigHandler(simulator))

	mux.HandleFunc("POST /memoria/proceso", CreateProcessHandler(simulator))
	mux.HandleFunc("GET /memoria/procesos", ProcessesHandler(simulator))
	mux.HandleFunc("POST /memoria/traducir", TranslateHandler(simulator))
	mux.HandleFunc("POST /memoria/corrida", RunHandler(simulator))
	mux.HandleFunc("GET /memoria/algoritmo", GetAlgorithmHandler(simulator))
	mux.HandleFunc("POST /memoria/algoritmo", SetAlgorithmHandler(simulator))
	mux.HandleFunc("GET /memoria/frames", FramesHandler(simulator))
	mux.HandleFunc("GET /memoria/estadisticas", StatsHandler(simulator))
	mux.HandleFunc("POST /memoria/dump", DumpHandler(simulator, dumpPath))

	return mux
}
