package utils

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertirNivel(t *testing.T) {
	tests := []struct {
		nivel    string
		esperado slog.Level
		wantErr  bool
	}{
		{nivel: "DEBUG", esperado: slog.LevelDebug},
		{nivel: "info", esperado: slog.LevelInfo},
		{nivel: "WARN", esperado: slog.LevelWarn},
		{nivel: "ERROR", esperado: slog.LevelError},
		{nivel: "TRACE", esperado: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.nivel, func(t *testing.T) {
			level, err := convertirNivel(tt.nivel)
			if (err != nil) != tt.wantErr {
				t.Errorf("convertirNivel(%q) error = %v, wantErr %v", tt.nivel, err, tt.wantErr)
			}
			if level != tt.esperado {
				t.Errorf("convertirNivel(%q) = %v, want %v", tt.nivel, level, tt.esperado)
			}
		})
	}
}

func TestConfigurarLoggerFiltraPorNivel(t *testing.T) {
	t.Cleanup(func() { CerrarLogger() })

	var buf bytes.Buffer
	configurarLogger(&buf, "WARN", "Test")

	InfoLog.Info("no debería aparecer")
	ErrorLog.Error("sí debería aparecer", "pagina", 3)

	salida := buf.String()
	if strings.Contains(salida, "no debería aparecer") {
		t.Errorf("se registró un mensaje INFO con nivel WARN: %s", salida)
	}
	if !strings.Contains(salida, "sí debería aparecer") || !strings.Contains(salida, "pagina=3") || !strings.Contains(salida, "modulo=Test") {
		t.Errorf("falta el mensaje de error o sus atributos: %s", salida)
	}
}

func TestInicializarLoggerEscribeArchivo(t *testing.T) {
	t.Cleanup(func() { CerrarLogger() })

	ruta := filepath.Join(t.TempDir(), "prueba.log")
	if err := InicializarLogger("NIVEL_RARO", "Prueba", ruta); err != nil {
		t.Fatalf("InicializarLogger() error = %v", err)
	}
	InfoLog.Info("mensaje de prueba")
	if err := CerrarLogger(); err != nil {
		t.Fatalf("CerrarLogger() error = %v", err)
	}

	contenido, err := os.ReadFile(ruta)
	if err != nil {
		t.Fatalf("no se pudo leer el log: %v", err)
	}
	if !strings.Contains(string(contenido), "mensaje de prueba") {
		t.Errorf("el log no tiene el mensaje: %s", contenido)
	}
	if !strings.Contains(string(contenido), "se usa INFO") {
		t.Errorf("el log no avisa del nivel desconocido: %s", contenido)
	}
}

func TestInicializarLoggerRutaInvalida(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "no", "existe", "x.log")
	if err := InicializarLogger("INFO", "Prueba", ruta); err == nil {
		t.Error("se esperaba un error con un directorio inexistente")
	}
}
