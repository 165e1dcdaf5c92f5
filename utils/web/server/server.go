package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ErrorResponse es el cuerpo que se devuelve cuando una operación falla.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InitServer inicializa el servidor sobre el mux dado (si es nil usa http.DefaultServeMux).
// En caso de no poder levantarlo retorna un error.
//
// Parámetros:
//   - port: puerto donde se iniciará el servidor
//   - mux: handler con las rutas registradas
//
// Ejemplo:
//
//	func main() {
//		err := server.InitServer(models.MemoryConfig.PortMemory, nil)
//		if err != nil {
//			slog.Error(fmt.Sprintf("error initializing server: %v", err))
//			panic(err)
//		}
//	}
func InitServer(port int, mux http.Handler) error {
	addr := ":" + strconv.Itoa(port)
	slog.Info(fmt.Sprintf("Escuchando en el puerto %s", addr))

	err := http.ListenAndServe(addr, mux)
	if err != nil {
		slog.Error("Error al escuchar en el puerto "+addr, "error", err)
	}
	return err
}

// SendJsonResponse retorna la respuesta del servidor en formato JSON con status 200.
//
// Parámetros:
//   - writer: el http.ResponseWriter con el que se escribe la respuesta HTTP
//   - data: cualquier estructura de datos que querés enviar al cliente, se convierte automáticamente a JSON.
func SendJsonResponse(writer http.ResponseWriter, data any) {
	SendJsonWithStatus(writer, http.StatusOK, data)
}

// SendJsonError responde con el status dado y el mensaje del error en el cuerpo.
func SendJsonError(writer http.ResponseWriter, status int, err error) {
	SendJsonWithStatus(writer, status, ErrorResponse{Error: err.Error()})
}

func SendJsonWithStatus(writer http.ResponseWriter, status int, data any) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error al convertir datos a JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write(response)
}
