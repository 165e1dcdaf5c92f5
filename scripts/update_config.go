package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Para su uso se debe posicionar en la carpeta scripts
// > ./update_config ip_memory 192.168.1.100
// > ./update_config port_memory 8010 replacement LRU
// > ./update_config page_size 256 memory_size 1024

// Módulos cuyas carpetas configs/ se recorren.
var modules = []string{"cpu", "memoria"}

func main() {
	updates, err := parseUpdates(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config ip_memory 192.168.0.10 replacement LRU")
		return
	}

	fmt.Println("Valores a actualizar:")
	for k, v := range updates {
		fmt.Printf("  %s: %v\n", k, v)
	}

	updated := 0
	for _, module := range modules {
		moduleConfigPath := filepath.Join("..", module, "configs")
		fmt.Printf("\nProcesando módulo: %s (en %s)\n", module, moduleConfigPath)

		count, err := updateConfigs(moduleConfigPath, updates)
		if err != nil {
			fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", moduleConfigPath, err)
		}
		updated += count
	}

	fmt.Printf("\nProceso de actualización de configuraciones finalizado. Archivos modificados: %d\n", updated)
}

// parseUpdates arma el mapa clave -> valor a partir de los argumentos en pares.
// Los valores que son JSON válido (números, booleanos) conservan su tipo; el resto queda como string.
func parseUpdates(args []string) (map[string]any, error) {
	if len(args) < 2 || len(args)%2 != 0 {
		return nil, fmt.Errorf("se esperaban pares <clave> <valor>, se recibieron %d argumentos", len(args))
	}

	updates := make(map[string]any)
	for i := 0; i < len(args); i += 2 {
		var parsedValue any
		if err := json.Unmarshal([]byte(args[i+1]), &parsedValue); err != nil {
			parsedValue = args[i+1]
		}
		updates[args[i]] = parsedValue
	}
	return updates, nil
}

// updateConfigs reemplaza en cada .json de dir las claves que ya existan. Devuelve cuántos archivos cambió.
func updateConfigs(dir string, updates map[string]any) (int, error) {
	updated := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("  Error al acceder %s: %v\n", path, err)
			return nil
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		fileContent, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("  Error al leer el archivo %s: %v\n", path, err)
			return nil
		}

		var data map[string]any
		if err := json.Unmarshal(fileContent, &data); err != nil {
			fmt.Printf("  Error al parsear JSON en el archivo %s: %v\n", path, err)
			return nil
		}

		modified := false
		for updateKey, updateValue := range updates {
			if _, ok := data[updateKey]; ok {
				data[updateKey] = updateValue
				fmt.Printf("    Modificada '%s' en %s a '%v'\n", updateKey, path, updateValue)
				modified = true
			}
		}

		if !modified {
			fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
			return nil
		}

		newJSON, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Printf("  Error al serializar JSON en el archivo %s: %v\n", path, err)
			return nil
		}
		if err := os.WriteFile(path, newJSON, 0644); err != nil {
			fmt.Printf("  Error al escribir el archivo %s: %v\n", path, err)
			return nil
		}
		fmt.Printf("  El archivo %s ha sido actualizado correctamente.\n", path)
		updated++
		return nil
	})
	return updated, err
}
