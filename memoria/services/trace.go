package services

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
)

// LoadTrace lee un archivo de accesos. Ver ParseTrace para el formato.
func LoadTrace(path string) ([]models.Access, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error al abrir la traza %s: %w", path, err)
	}
	defer file.Close()

	return ParseTrace(file)
}

// ParseTrace lee un acceso por línea con el formato "<pid> <direccion>" (también separado por coma).
// La dirección puede ser decimal o hexadecimal con prefijo 0x. Las líneas vacías y las que empiezan
// con # se ignoran.
func ParseTrace(reader io.Reader) ([]models.Access, error) {
	var accesses []models.Access
	scanner := bufio.NewScanner(reader)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("línea %d: se esperaba \"<pid> <direccion>\", se leyó %q", lineNumber, line)
		}

		pid, err := strconv.ParseUint(fields[0], 10, 0)
		if err != nil {
			return nil, fmt.Errorf("línea %d: PID inválido %q: %w", lineNumber, fields[0], err)
		}
		address, err := strconv.ParseInt(fields[1], 0, 0)
		if err != nil {
			return nil, fmt.Errorf("línea %d: dirección inválida %q: %w", lineNumber, fields[1], err)
		}

		accesses = append(accesses, models.Access{PID: uint(pid), Address: int(address)})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error al leer la traza: %w", err)
	}
	return accesses, nil
}
