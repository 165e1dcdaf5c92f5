package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// StatusError es el error que se devuelve cuando el servidor responde con un status fuera de 2xx.
type StatusError struct {
	StatusCode int
	Message    string // mensaje del cuerpo {"error": ...}, si vino
}

func (e *StatusError) Error() string {
	text := fmt.Sprintf("Status Error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		text += ": " + e.Message
	}
	return text
}

// IsClientError indica si el servidor rechazó el pedido (4xx).
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// DoRequest es una función genérica para realizar peticiones HTTP (GET, POST, PUT, DELETE, etc.) desde un cliente.
// Si el servidor responde con un status fuera de 2xx se devuelve la respuesta junto con un *StatusError.
//
// Parámetros:
//   - port: el puerto al que se hará la petición
//   - ip: la IP o dominio del servidor
//   - metodo: metodo HTTP
//   - query: parte final de la URL
//   - bodies ...[]byte: (opcional) body del request, puede pasarse vacío.
//
// Ejemplo:
//
//	func main() {
//		response, err := client.DoRequest(8002, "127.0.0.1", "GET", "memoria/estadisticas")
//		if err != nil {
//			slog.Error(fmt.Sprintf("Ocurrió un error: %v", err))
//			return
//		}
//		defer response.Body.Close()
//	}
func DoRequest(port int, ip string, metodo string, query string, bodies ...[]byte) (*http.Response, error) {
	cliente := &http.Client{Timeout: requestTimeout}

	url := fmt.Sprintf("http://%s:%d/%s", ip, port, query)

	req, err := http.NewRequest(metodo, url, ifBody(bodies...))
	if err != nil {
		slog.Error(fmt.Sprintf("error creando request a ip: %s puerto: %d", ip, port))
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	respuesta, err := cliente.Do(req)
	if err != nil {
		slog.Error(fmt.Sprintf("error enviando request a ip: %s puerto: %d - %v", ip, port, err))
		return nil, err
	}

	if respuesta.StatusCode < 200 || respuesta.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: respuesta.StatusCode}
		slog.Debug(statusErr.Error(), "url", url)
		return respuesta, statusErr
	}

	return respuesta, nil
}

// DoJsonRequest serializa request (si no es nil), hace la petición y decodifica la respuesta en response.
// Cuando el status no es 2xx el *StatusError incluye el mensaje que devolvió el servidor.
func DoJsonRequest(port int, ip string, metodo string, query string, request any, response any) error {
	var bodies [][]byte
	if request != nil {
		body, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("error serializando request a %s: %w", query, err)
		}
		bodies = append(bodies, body)
	}

	resp, err := DoRequest(port, ip, metodo, query, bodies...)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			var serverError struct {
				Error string `json:"error"`
			}
			if decodeErr := json.NewDecoder(resp.Body).Decode(&serverError); decodeErr == nil {
				statusErr.Message = serverError.Error
			}
		}
		return err
	}

	if response == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return fmt.Errorf("error decodificando respuesta de %s: %w", query, err)
	}
	return nil
}

func ifBody(bodies ...[]byte) io.Reader {
	if len(bodies) == 0 {
		return nil
	}
	return bytes.NewBuffer(bodies[0])
}
