package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadConfig decodifica el archivo JSON configPath sobre config. Los campos que
// el archivo no trae conservan el valor que ya tenían; los campos desconocidos
// son un error.
func LoadConfig[T any](configPath string, config *T) error {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return fmt.Errorf("error obteniendo ruta absoluta: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return fmt.Errorf("error abriendo archivo de configuración %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		return fmt.Errorf("error decodificando configuración %s: %w", absPath, err)
	}

	return nil
}

// CargarConfiguracion parte de porDefecto y le aplica el archivo ruta. Si el
// archivo no existe y no es obligatorio se devuelven los valores por defecto.
func CargarConfiguracion[T any](ruta string, porDefecto T, obligatorio bool) (*T, error) {
	InfoLog.Info("Cargando configuración", "ruta", ruta)

	config := porDefecto
	if err := LoadConfig(ruta, &config); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !obligatorio {
			InfoLog.Warn("Archivo de configuración no encontrado, se usan valores por defecto", "ruta", ruta)
			return &config, nil
		}
		return nil, err
	}

	InfoLog.Info("Configuración cargada correctamente", "ruta", ruta)
	return &config, nil
}
