package main

import (
	"fmt"
	"io"

	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/paginacion"
)

const (
	gigabyte = 1 << 30
	megabyte = 1 << 20
)

func imprimirFormato(w io.Writer, f paginacion.Formato) {
	fmt.Fprintln(w, "Formato de la dirección virtual:")
	fmt.Fprintf(w, " - Número de página: %d bits (bits %d a %d de la dirección)\n",
		f.BitsPagina, f.BitsOffset, f.BitsOffset+f.BitsPagina-1)
	fmt.Fprintf(w, " - Offset dentro de la página: %d bits (bits 0 a %d de la dirección)\n",
		f.BitsOffset, f.BitsOffset-1)
}

func imprimirTamanios(w io.Writer, f paginacion.Formato) {
	virtual := f.EspacioVirtual()
	fmt.Fprintf(w, "El tamaño del espacio de direcciones virtuales es: %d bytes (%.2f GB)\n",
		virtual, float64(virtual)/gigabyte)

	fisica := f.MemoriaFisica()
	fmt.Fprintf(w, "El tamaño de la memoria física es: %d bytes (%.2f MB)\n",
		fisica, float64(fisica)/megabyte)
}
