// Package paginacion contiene la aritmética de direcciones de memoria virtual:
// descomposición multinivel, tiempo promedio de acceso y traducción con una
// tabla de páginas de un solo nivel.
package paginacion

import "fmt"

// Esquema describe cómo se reparte una dirección virtual entre los índices de
// cada nivel de tablas de páginas y el offset.
type Esquema struct {
	// BitsDireccion es el ancho nominal de la dirección (36 en el esquema por defecto).
	BitsDireccion uint
	// BitsOffset es el ancho del desplazamiento dentro de la página.
	BitsOffset uint
	// BitsPorNivel tiene el ancho del índice de cada nivel, empezando por el nivel 1
	// (el más significativo).
	BitsPorNivel []uint
}

// DireccionVirtual es una dirección ya descompuesta. Indices[0] es el índice
// de la tabla de nivel 1.
type DireccionVirtual struct {
	Indices []uint64
	Offset  uint64
}

// EsquemaDefecto devuelve el esquema de tres niveles sobre 36 bits:
// 4 bits de nivel 1, 8 de nivel 2, 8 de nivel 3 y 12 de offset.
func EsquemaDefecto() Esquema {
	return Esquema{
		BitsDireccion: 36,
		BitsOffset:    12,
		BitsPorNivel:  []uint{4, 8, 8},
	}
}

// Niveles devuelve la cantidad de niveles de tablas de páginas.
func (e Esquema) Niveles() int {
	return len(e.BitsPorNivel)
}

// TamanioPagina devuelve el tamaño de página en bytes.
func (e Esquema) TamanioPagina() uint64 {
	return 1 << e.BitsOffset
}

// BitsUsados devuelve la suma de los anchos de offset e índices.
func (e Esquema) BitsUsados() uint {
	total := e.BitsOffset
	for _, bits := range e.BitsPorNivel {
		total += bits
	}
	return total
}

// Validar controla que el esquema sea representable en 64 bits.
func (e Esquema) Validar() error {
	if e.BitsOffset == 0 {
		return fmt.Errorf("el offset debe tener al menos un bit")
	}
	if len(e.BitsPorNivel) == 0 {
		return fmt.Errorf("el esquema necesita al menos un nivel de tablas")
	}
	for i, bits := range e.BitsPorNivel {
		if bits == 0 {
			return fmt.Errorf("el nivel %d no tiene bits asignados", i+1)
		}
	}
	if e.BitsDireccion > 64 {
		return fmt.Errorf("direcciones de %d bits no entran en 64 bits", e.BitsDireccion)
	}
	if usados := e.BitsUsados(); usados > e.BitsDireccion {
		return fmt.Errorf("los campos usan %d bits pero la dirección tiene %d", usados, e.BitsDireccion)
	}
	return nil
}

// Descomponer separa una dirección virtual en el offset y los índices de cada
// nivel. Los bits por encima de los que usa el esquema se ignoran.
func Descomponer(direccion uint64, e Esquema) DireccionVirtual {
	d := DireccionVirtual{
		Offset:  direccion & mascara(e.BitsOffset),
		Indices: make([]uint64, len(e.BitsPorNivel)),
	}

	// El último nivel queda pegado al offset; se recorre de abajo hacia arriba
	desplazamiento := e.BitsOffset
	for nivel := len(e.BitsPorNivel) - 1; nivel >= 0; nivel-- {
		bits := e.BitsPorNivel[nivel]
		d.Indices[nivel] = (direccion >> desplazamiento) & mascara(bits)
		desplazamiento += bits
	}

	return d
}

// DescomponerDefecto descompone con EsquemaDefecto.
func DescomponerDefecto(direccion uint64) DireccionVirtual {
	return Descomponer(direccion, EsquemaDefecto())
}

// Recomponer arma la dirección a partir de sus campos. Es la inversa de
// Descomponer sobre los bits que usa el esquema.
func Recomponer(d DireccionVirtual, e Esquema) uint64 {
	direccion := d.Offset & mascara(e.BitsOffset)
	desplazamiento := e.BitsOffset
	for nivel := len(e.BitsPorNivel) - 1; nivel >= 0; nivel-- {
		bits := e.BitsPorNivel[nivel]
		var indice uint64
		if nivel < len(d.Indices) {
			indice = d.Indices[nivel] & mascara(bits)
		}
		direccion |= indice << desplazamiento
		desplazamiento += bits
	}
	return direccion
}

// Indice devuelve el índice del nivel pedido, contando desde 1.
func (d DireccionVirtual) Indice(nivel int) uint64 {
	if nivel < 1 || nivel > len(d.Indices) {
		return 0
	}
	return d.Indices[nivel-1]
}

func mascara(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (1 << bits) - 1
}
