package utils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestConsolaPreguntar(t *testing.T) {
	var salida bytes.Buffer
	consola := NuevaConsola(strings.NewReader("  0x2005 \nsegunda\n"), &salida)

	linea, err := consola.Preguntar(context.Background(), "Dirección: ")
	if err != nil {
		t.Fatalf("Preguntar() error = %v", err)
	}
	if linea != "0x2005" {
		t.Errorf("Preguntar() = %q, want %q", linea, "0x2005")
	}
	if salida.String() != "Dirección: \n" {
		t.Errorf("salida = %q", salida.String())
	}

	linea, err = consola.Preguntar(context.Background(), "")
	if err != nil || linea != "segunda" {
		t.Errorf("segunda Preguntar() = (%q, %v)", linea, err)
	}

	if _, err := consola.Preguntar(context.Background(), ""); !errors.Is(err, io.EOF) {
		t.Errorf("sin más líneas error = %v, want io.EOF", err)
	}
	if err := consola.Cerrar(); err != nil {
		t.Errorf("Cerrar() error = %v", err)
	}
}

func TestConsolaUltimaLineaSinSalto(t *testing.T) {
	consola := ConsolaPara(strings.NewReader("1000"), io.Discard)
	linea, err := consola.Preguntar(context.Background(), "? ")
	if err != nil || linea != "1000" {
		t.Errorf("Preguntar() = (%q, %v), want (\"1000\", nil)", linea, err)
	}
}

func TestConsolaPreguntarCancelado(t *testing.T) {
	// La entrada nunca escribe nada, como una terminal esperando Enter
	lector, escritor := io.Pipe()
	defer escritor.Close()

	var salida bytes.Buffer
	consola := NuevaConsola(lector, &salida)

	ctx, cancelar := context.WithCancel(context.Background())
	resultado := make(chan error, 1)
	go func() {
		_, err := consola.Preguntar(ctx, "Dirección: ")
		resultado <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancelar()

	select {
	case err := <-resultado:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Preguntar() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Preguntar() sigue bloqueado después de cancelar el contexto")
	}
}

func TestConsolaPreguntarYaCancelado(t *testing.T) {
	var salida bytes.Buffer
	consola := NuevaConsola(strings.NewReader("2005\n"), &salida)

	ctx, cancelar := context.WithCancel(context.Background())
	cancelar()

	if _, err := consola.Preguntar(ctx, "Dirección: "); !errors.Is(err, context.Canceled) {
		t.Errorf("Preguntar() error = %v, want context.Canceled", err)
	}
	if salida.Len() != 0 {
		t.Errorf("no debería mostrar la pregunta, salida = %q", salida.String())
	}
}
