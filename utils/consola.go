package utils

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	tty "github.com/mattn/go-tty"
)

// Consola hace las preguntas interactivas de los programas
type Consola struct {
	lector   *bufio.Reader
	terminal *tty.TTY
	salida   io.Writer
}

// AbrirConsola lee de la terminal con go-tty cuando entrada es una terminal, y
// con un bufio.Reader sobre entrada en cualquier otro caso (pipes, archivos).
func AbrirConsola(entrada *os.File, salida io.Writer) *Consola {
	if isatty.IsTerminal(entrada.Fd()) || isatty.IsCygwinTerminal(entrada.Fd()) {
		terminal, err := tty.Open()
		if err == nil {
			InfoLog.Debug("Leyendo desde la terminal")
			return &Consola{terminal: terminal, salida: salida}
		}
		InfoLog.Warn("No se pudo abrir la terminal, se lee la entrada estándar", "error", err)
	}
	return NuevaConsola(entrada, salida)
}

// ConsolaPara elige AbrirConsola si entrada es un archivo (os.Stdin) y
// NuevaConsola para cualquier otro lector
func ConsolaPara(entrada io.Reader, salida io.Writer) *Consola {
	if archivo, ok := entrada.(*os.File); ok {
		return AbrirConsola(archivo, salida)
	}
	return NuevaConsola(entrada, salida)
}

// NuevaConsola lee líneas de entrada y escribe las preguntas en salida
func NuevaConsola(entrada io.Reader, salida io.Writer) *Consola {
	return &Consola{
		lector: bufio.NewReader(entrada),
		salida: salida,
	}
}

type respuesta struct {
	linea string
	err   error
}

// Preguntar muestra el mensaje y devuelve la línea ingresada sin espacios en los
// extremos. Una última línea sin salto de línea también vale. Si se cancela ctx
// mientras espera, devuelve el error del contexto y la consola no se vuelve a usar.
func (c *Consola) Preguntar(ctx context.Context, mensaje string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.salida, mensaje); err != nil {
		return "", err
	}

	lectura := make(chan respuesta, 1)
	go func() {
		linea, err := c.leerLinea()
		lectura <- respuesta{linea: linea, err: err}
	}()

	select {
	case r := <-lectura:
		return r.linea, r.err
	case <-ctx.Done():
		fmt.Fprintln(c.salida)
		return "", ctx.Err()
	}
}

func (c *Consola) leerLinea() (string, error) {
	if c.terminal != nil {
		linea, err := c.terminal.ReadString()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(linea), nil
	}

	linea, err := c.lector.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && linea != "") {
		return "", err
	}
	// Sin terminal no hay eco de la respuesta; se cierra la línea de la pregunta
	fmt.Fprintln(c.salida)
	return strings.TrimSpace(linea), nil
}

// Cerrar libera la terminal si se abrió una
func (c *Consola) Cerrar() error {
	if c.terminal != nil {
		return c.terminal.Close()
	}
	return nil
}
