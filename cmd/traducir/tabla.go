package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/paginacion"
)

// volcarTabla escribe la tabla de páginas, una entrada por línea, con los bits
// como 1/0. Para las páginas ausentes la última columna es el bloque de swap.
func volcarTabla(w io.Writer, tabla paginacion.TablaPaginas) {
	fmt.Fprintf(w, "\nTabla de páginas (%d entradas):\n", len(tabla))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Página\tPresencia\tModificado\tMarco/Bloque\t")
	for i, entrada := range tabla {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t\n", i, bit(entrada.Presente), bit(entrada.Modificado), entrada.Marco)
	}
	tw.Flush()
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
