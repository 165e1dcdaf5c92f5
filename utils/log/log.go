package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const LogDir = "./logs"

// InitLogger configura slog para escribir en consola y en el archivo indicado a la vez.
//
// Parámetros:
//   - logPath: la ubicación del archivo de log (se crea el directorio si no existe)
//   - logLevel: nivel de logueo, viene definido en el archivo de config.
//
// Ejemplo:
//
//	func main() {
//		log.InitLogger("./logs/memoria.log", "INFO")
//	}
func InitLogger(logPath string, logLevel string) {
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		panic(err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		panic(err)
	}

	slog.SetDefault(NewLogger(io.MultiWriter(os.Stdout, logFile), logLevel))
	slog.Debug("Se ha configurado correctamente el logger", "archivo", logPath)
}

// NewLogger arma un logger de texto sobre writer. Si el nivel no existe se usa INFO y se deja un warning.
func NewLogger(writer io.Writer, logLevel string) *slog.Logger {
	level, err := convertStringToLogLevel(logLevel)

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	logger := slog.New(handler)

	if err != nil {
		logger.Warn(err.Error())
	}
	return logger
}

// BuildLogPath arma la ruta del archivo de log dentro de LogDir.
//
// Ejemplo:
//
//	path, _ := log.BuildLogPath("cpu_%s", "1") // ./logs/cpu_1.log
func BuildLogPath(format string, args ...any) (string, error) {
	name := fmt.Sprintf(format, args...)
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("nombre de log inválido: %q", name)
	}
	return filepath.Join(LogDir, name+".log"), nil
}

// convertStringToLogLevel modifica dinámicamente el nivel de log que deseamos tener en el sistema.
func convertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("No existe %s, se coloca INFO por defecto. ", levelStr)
	}
}
