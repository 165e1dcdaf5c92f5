package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/memoria/models"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/config"
	"github.com/sisoputnfrba/tp-paginacion-bajo-demanda/utils/log"
)

// crea un directorio en el path especificado.
func CreateDirectory(dir string) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		slog.Error(fmt.Sprintf("Error al crear el directorio %s: %v", dir, err))
		return err
	}

	slog.Debug(fmt.Sprintf("Directorio %s creado o ya existía.", dir))
	return nil
}

// InitMemory carga la configuración en models.MemoryConfig, levanta el logger y prepara el directorio de dumps.
// Devuelve error si no se puede crear el directorio de dumps.
func InitMemory(configPath string, logPath string) error {
	config.InitConfig(configPath, &models.MemoryConfig)
	log.InitLogger(logPath, models.MemoryConfig.LogLevel)

	slog.Debug(fmt.Sprintf("Port Memory: %d", models.MemoryConfig.PortMemory))
	if models.MemoryConfig.DumpPath == "" {
		return nil
	}
	if err := CreateDirectory(models.MemoryConfig.DumpPath); err != nil {
		return fmt.Errorf("directorio de dumps %s: %w", models.MemoryConfig.DumpPath, err)
	}
	return nil
}

// GetDumpName arma el nombre del archivo de dump: <etiqueta>-<timestamp>.dmp
func GetDumpName(label string) string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("%s-%s.dmp", label, timestamp)
}
