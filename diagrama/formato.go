// Package diagrama dibuja el formato de una dirección (qué bits ocupa cada campo)
// como imagen PNG.
package diagrama

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
)

// Campo es un tramo de bits de la dirección
type Campo struct {
	Nombre string
	Bits   uint
}

const (
	anchoBit   = 24.0
	margen     = 20.0
	altoCaja   = 40.0
	altoImagen = 120
	yCaja      = 40.0
)

var colores = []color.Color{
	color.RGBA{0x9e, 0xc5, 0xfe, 0xff},
	color.RGBA{0xa3, 0xe4, 0xd7, 0xff},
	color.RGBA{0xf9, 0xe7, 0x9f, 0xff},
	color.RGBA{0xf5, 0xb7, 0xb1, 0xff},
	color.RGBA{0xd7, 0xbd, 0xe2, 0xff},
}

var colorSinUso = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}

// Ancho devuelve el ancho en píxeles de la imagen de una dirección de bitsTotales bits
func Ancho(bitsTotales uint) int {
	return int(2*margen + float64(bitsTotales)*anchoBit)
}

// Dibujar arma la imagen del formato de una dirección de bitsTotales bits.
// Los campos van del más significativo al menos significativo; si no cubren
// toda la dirección, los bits de arriba se dibujan como "sin uso".
func Dibujar(titulo string, bitsTotales uint, campos []Campo) (image.Image, error) {
	var usados uint
	for _, c := range campos {
		if c.Bits == 0 {
			return nil, fmt.Errorf("el campo %q no tiene bits", c.Nombre)
		}
		usados += c.Bits
	}
	if usados == 0 || usados > bitsTotales {
		return nil, fmt.Errorf("los campos ocupan %d bits y la dirección tiene %d", usados, bitsTotales)
	}

	sinUso := bitsTotales - usados
	if sinUso > 0 {
		campos = append([]Campo{{Nombre: "sin uso", Bits: sinUso}}, campos...)
	}

	ancho := Ancho(bitsTotales)
	dc := gg.NewContext(ancho, altoImagen)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(titulo, float64(ancho)/2, margen, 0.5, 0.5)

	x := margen
	bitAlto := int(bitsTotales) - 1
	for i, c := range campos {
		w := float64(c.Bits) * anchoBit

		if i == 0 && sinUso > 0 {
			dc.SetColor(colorSinUso)
		} else {
			dc.SetColor(colores[i%len(colores)])
		}
		dc.DrawRectangle(x, yCaja, w, altoCaja)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, yCaja, w, altoCaja)
		dc.Stroke()

		dc.DrawStringAnchored(fmt.Sprintf("%s (%d)", c.Nombre, c.Bits), x+w/2, yCaja+altoCaja/2, 0.5, 0.5)

		// Numeración de bits debajo de cada caja
		bitBajo := bitAlto - int(c.Bits) + 1
		dc.DrawStringAnchored(strconv.Itoa(bitAlto), x+2, yCaja+altoCaja+12, 0, 0.5)
		if bitBajo != bitAlto {
			dc.DrawStringAnchored(strconv.Itoa(bitBajo), x+w-2, yCaja+altoCaja+12, 1, 0.5)
		}

		bitAlto = bitBajo - 1
		x += w
	}

	return dc.Image(), nil
}

// GuardarPNG dibuja el formato y lo guarda en ruta
func GuardarPNG(ruta string, titulo string, bitsTotales uint, campos []Campo) error {
	img, err := Dibujar(titulo, bitsTotales, campos)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(ruta, img); err != nil {
		return fmt.Errorf("error guardando diagrama %s: %w", ruta, err)
	}
	return nil
}
