package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type TestConfig struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Levels []uint `json:"levels"`
}

func TestLoadConfig(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "testconfig")
	if err != nil {
		t.Fatalf("Failed to create temporary file: %v", err)
	}

	validConfig := TestConfig{Name: "test", Value: 123, Levels: []uint{4, 8, 8}}
	json.NewEncoder(tempFile).Encode(validConfig)
	tempFile.Close()

	var config TestConfig
	if err := LoadConfig(tempFile.Name(), &config); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if !reflect.DeepEqual(config, validConfig) {
		t.Errorf("Expected config to be %v, got: %v", validConfig, config)
	}
}

func TestLoadConfigConservaLoQueFalta(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "parcial.json")
	if err := os.WriteFile(ruta, []byte(`{"value": 7}`), 0644); err != nil {
		t.Fatal(err)
	}

	config := TestConfig{Name: "por defecto", Value: 1}
	if err := LoadConfig(ruta, &config); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Name != "por defecto" || config.Value != 7 {
		t.Errorf("config = %+v", config)
	}
}

func TestLoadConfig_ThrowError(t *testing.T) {
	if err := LoadConfig("nonexistent.json", &TestConfig{}); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	ruta := filepath.Join(t.TempDir(), "desconocido.json")
	if err := os.WriteFile(ruta, []byte(`{"name": "x", "otro": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadConfig(ruta, &TestConfig{}); err == nil {
		t.Error("Expected error for unknown field, got nil")
	}
}

func TestCargarConfiguracion(t *testing.T) {
	porDefecto := TestConfig{Name: "defecto", Value: 1}

	config, err := CargarConfiguracion(filepath.Join(t.TempDir(), "no-existe.json"), porDefecto, false)
	if err != nil {
		t.Fatalf("CargarConfiguracion() opcional error = %v", err)
	}
	if config.Name != "defecto" || config.Value != 1 {
		t.Errorf("se esperaban los valores por defecto, got %+v", config)
	}

	if _, err := CargarConfiguracion(filepath.Join(t.TempDir(), "no-existe.json"), porDefecto, true); err == nil {
		t.Error("CargarConfiguracion() obligatorio sin archivo debería fallar")
	}

	ruta := filepath.Join(t.TempDir(), "roto.json")
	if err := os.WriteFile(ruta, []byte(`{"name": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := CargarConfiguracion(ruta, porDefecto, false); err == nil {
		t.Error("un archivo mal formado debería fallar aunque sea opcional")
	}
}
