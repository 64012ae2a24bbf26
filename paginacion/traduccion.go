package paginacion

import (
	"errors"
	"fmt"
)

var (
	// ErrFueraDeTabla indica que el número de página no tiene entrada en la tabla.
	ErrFueraDeTabla = errors.New("número de página fuera de los límites de la tabla")
	// ErrPaginaEnSwap indica que la página no está presente en memoria física.
	ErrPaginaEnSwap = errors.New("la página está en swap")
)

// EntradaTabla es una entrada de la tabla de páginas. Si la página no está
// presente, Marco es el bloque de swap.
type EntradaTabla struct {
	Presente   bool   `json:"presente"`
	Modificado bool   `json:"modificado"`
	Marco      uint32 `json:"marco"`
}

// TablaPaginas se indexa por número de página.
type TablaPaginas []EntradaTabla

// TablaEjemplo devuelve una tabla de ocho entradas, con páginas presentes y en swap.
func TablaEjemplo() TablaPaginas {
	return TablaPaginas{
		{Presente: true, Modificado: true, Marco: 0},
		{Presente: false, Modificado: false, Marco: 8},
		{Presente: true, Modificado: false, Marco: 9},
		{Presente: true, Modificado: true, Marco: 14},
		{Presente: true, Modificado: false, Marco: 3},
		{Presente: true, Modificado: false, Marco: 7},
		{Presente: false, Modificado: true, Marco: 25},
		{Presente: false, Modificado: true, Marco: 16},
	}
}

// Formato describe una dirección virtual de un solo nivel: número de página y offset.
type Formato struct {
	BitsDireccion       uint
	BitsOffset          uint
	BitsPagina          uint
	BitsDireccionFisica uint
}

// FormatoDefecto: direcciones de 32 bits, 8 bits de página (bits 12 a 19),
// 12 de offset y memoria física de 2^21 bytes.
func FormatoDefecto() Formato {
	return Formato{
		BitsDireccion:       32,
		BitsOffset:          12,
		BitsPagina:          8,
		BitsDireccionFisica: 21,
	}
}

// Validar controla que página y offset entren en una dirección de hasta 32 bits.
func (f Formato) Validar() error {
	if f.BitsOffset == 0 || f.BitsPagina == 0 {
		return fmt.Errorf("offset y número de página necesitan al menos un bit")
	}
	if f.BitsDireccion > 32 {
		return fmt.Errorf("el traductor trabaja con direcciones de hasta 32 bits, no %d", f.BitsDireccion)
	}
	if f.BitsOffset+f.BitsPagina > f.BitsDireccion {
		return fmt.Errorf("página (%d) + offset (%d) no entran en %d bits", f.BitsPagina, f.BitsOffset, f.BitsDireccion)
	}
	if f.BitsDireccionFisica > 64 {
		return fmt.Errorf("direcciones físicas de %d bits no entran en 64 bits", f.BitsDireccionFisica)
	}
	return nil
}

// TamanioPagina devuelve el tamaño de página en bytes.
func (f Formato) TamanioPagina() uint64 {
	return 1 << f.BitsOffset
}

// EspacioVirtual devuelve el tamaño del espacio de direcciones virtuales en bytes.
func (f Formato) EspacioVirtual() uint64 {
	return 1 << f.BitsDireccion
}

// MemoriaFisica devuelve el tamaño de la memoria física en bytes.
func (f Formato) MemoriaFisica() uint64 {
	return 1 << f.BitsDireccionFisica
}

// Traductor traduce direcciones virtuales con una tabla de páginas fija.
// No modifica la tabla; se puede usar desde varias goroutines.
type Traductor struct {
	formato Formato
	tabla   TablaPaginas
}

// NuevoTraductor copia la tabla recibida, así el llamador puede seguir usándola.
func NuevoTraductor(formato Formato, tabla TablaPaginas) (*Traductor, error) {
	if err := formato.Validar(); err != nil {
		return nil, err
	}
	copia := make(TablaPaginas, len(tabla))
	copy(copia, tabla)
	return &Traductor{formato: formato, tabla: copia}, nil
}

// Formato devuelve el formato de dirección con el que traduce.
func (t *Traductor) Formato() Formato {
	return t.formato
}

// Tabla devuelve una copia de la tabla de páginas.
func (t *Traductor) Tabla() TablaPaginas {
	copia := make(TablaPaginas, len(t.tabla))
	copy(copia, t.tabla)
	return copia
}

// Pagina extrae el número de página de la dirección.
func (t *Traductor) Pagina(direccion uint32) uint32 {
	return uint32(uint64(direccion)>>t.formato.BitsOffset) & uint32(mascara(t.formato.BitsPagina))
}

// Offset extrae el desplazamiento dentro de la página.
func (t *Traductor) Offset(direccion uint32) uint32 {
	return direccion & uint32(mascara(t.formato.BitsOffset))
}

// Traducir devuelve la dirección física de una dirección virtual. Falla con
// ErrFueraDeTabla si la página no tiene entrada y con ErrPaginaEnSwap si la
// entrada no está presente.
func (t *Traductor) Traducir(direccion uint32) (uint64, error) {
	numPagina := t.Pagina(direccion)
	desplazamiento := t.Offset(direccion)

	if int(numPagina) >= len(t.tabla) {
		return 0, fmt.Errorf("%w: página %d, la tabla tiene %d entradas", ErrFueraDeTabla, numPagina, len(t.tabla))
	}

	entrada := t.tabla[numPagina]
	if !entrada.Presente {
		return 0, fmt.Errorf("%w: página %d en el bloque de swap %d", ErrPaginaEnSwap, numPagina, entrada.Marco)
	}

	return uint64(entrada.Marco)*t.formato.TamanioPagina() + uint64(desplazamiento), nil
}

// Traducir traduce con FormatoDefecto y la tabla recibida.
func Traducir(direccion uint32, tabla TablaPaginas) (uint64, error) {
	t, err := NuevoTraductor(FormatoDefecto(), tabla)
	if err != nil {
		return 0, err
	}
	return t.Traducir(direccion)
}
