package main

import (
	"fmt"
	"io"

	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/paginacion"
)

func imprimirDescomposicion(w io.Writer, d paginacion.DireccionVirtual) {
	fmt.Fprintln(w, "Descomposición de la dirección virtual:")
	for nivel := 1; nivel <= len(d.Indices); nivel++ {
		fmt.Fprintf(w, " - Índice de tabla de nivel %d: %d\n", nivel, d.Indice(nivel))
	}
	fmt.Fprintf(w, " - Offset dentro de la página: %d\n", d.Offset)
}

func imprimirTiempo(w io.Writer, tiempo float64) {
	fmt.Fprintf(w, "Tiempo promedio de acceso a memoria (sin fallo de página): %.2f ns\n", tiempo)
}
