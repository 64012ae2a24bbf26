package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Loggers compartidos por los programas. Hasta que se llama a InicializarLogger
// descartan todo, así los paquetes se pueden usar (y testear) sin configurar nada.
var (
	InfoLog  = slog.New(slog.DiscardHandler)
	ErrorLog = slog.New(slog.DiscardHandler)

	archivoLog *os.File
)

// InicializarLogger configura InfoLog y ErrorLog con el nivel indicado
// (DEBUG, INFO, WARN o ERROR). Los mensajes van a rutaArchivo; si está vacía
// se usa "<nombre>.log". Se puede llamar de nuevo para cambiar el nivel.
func InicializarLogger(nivel string, nombre string, rutaArchivo string) error {
	if rutaArchivo == "" {
		rutaArchivo = strings.ToLower(nombre) + ".log"
	}

	archivo, err := os.OpenFile(rutaArchivo, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("error abriendo archivo de log %s: %w", rutaArchivo, err)
	}

	configurarLogger(archivo, nivel, nombre)

	if archivoLog != nil {
		archivoLog.Close()
	}
	archivoLog = archivo
	return nil
}

// CerrarLogger cierra el archivo de log y vuelve a descartar los mensajes
func CerrarLogger() error {
	InfoLog = slog.New(slog.DiscardHandler)
	ErrorLog = InfoLog
	if archivoLog == nil {
		return nil
	}
	err := archivoLog.Close()
	archivoLog = nil
	return err
}

func configurarLogger(w io.Writer, nivel string, nombre string) {
	level, err := convertirNivel(nivel)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	InfoLog = slog.New(handler).With("modulo", nombre)
	ErrorLog = InfoLog
	slog.SetDefault(InfoLog)

	if err != nil {
		InfoLog.Warn(err.Error())
	}
}

// convertirNivel traduce el nivel de la configuración a slog.Level
func convertirNivel(nivel string) (slog.Level, error) {
	switch strings.ToUpper(nivel) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("no existe el nivel de log %q, se usa INFO", nivel)
	}
}
