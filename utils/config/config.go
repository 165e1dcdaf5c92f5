package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración y carga sus valores en config. Si el archivo no existe o
// no es un JSON válido el módulo no puede arrancar, por eso se hace panic.
//
// Parámetros:
//   - filePath: ubicacion donde se encuentra el archivo de configuracion
//   - config: puntero a cualquier tipo de estructura
//
// Ejemplo:
//
//	type TestConfig struct {
//		Name  string `json:"name"`
//		Value int    `json:"value"`
//	}
//	func main() {
//		var testConfig *TestConfig
//		config.InitConfig("./test.json", &testConfig)
//	}
func InitConfig(filePath string, config any) {
	if err := setupConfig(filePath, config); err != nil {
		panic(fmt.Errorf("error al configurar el archivo %s: %w", filePath, err))
	}
}

// LoadConfig es igual a InitConfig pero devuelve el error en lugar de hacer panic.
func LoadConfig[T any](filePath string) (*T, error) {
	var config T
	if err := setupConfig(filePath, &config); err != nil {
		return nil, fmt.Errorf("error al configurar el archivo %s: %w", filePath, err)
	}
	return &config, nil
}

func setupConfig(filePath string, config any) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	if err := jsonParser.Decode(config); err != nil {
		return err
	}

	return nil
}
