package utils

import (
	"fmt"
	"strings"
)

// Bandera es una opción sin valor, con su forma corta y larga (por ejemplo -t y --tabla)
type Bandera struct {
	Corta string
	Larga string
}

// Modulo representa un programa de línea de comandos ya interpretado.
// ConfigExplicita indica si la configuración vino por -c/--config, y entonces
// el archivo tiene que existir.
type Modulo struct {
	Nombre          string
	ConfigPath      string
	ConfigExplicita bool
	DiagramaPath    string
	Args            []string
	banderas        map[string]bool
}

// NuevoModulo interpreta los argumentos del programa. Reconoce -c/--config <ruta>,
// -d/--diagrama <ruta> y las banderas recibidas; el resto son argumentos posicionales.
// Después de "--" todo es posicional.
func NuevoModulo(nombre string, args []string, configPorDefecto string, banderas ...Bandera) (*Modulo, error) {
	m := &Modulo{
		Nombre:     nombre,
		ConfigPath: configPorDefecto,
		banderas:   make(map[string]bool),
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--config":
			valor, err := valorOpcion(args, i)
			if err != nil {
				return nil, err
			}
			m.ConfigPath = valor
			m.ConfigExplicita = true
			i++
		case arg == "-d" || arg == "--diagrama":
			valor, err := valorOpcion(args, i)
			if err != nil {
				return nil, err
			}
			m.DiagramaPath = valor
			i++
		case arg == "--":
			m.Args = append(m.Args, args[i+1:]...)
			return m, nil
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			b, existe := buscarBandera(banderas, arg)
			if !existe {
				return nil, fmt.Errorf("opción desconocida %s", arg)
			}
			m.banderas[b.Larga] = true
		default:
			m.Args = append(m.Args, arg)
		}
	}

	return m, nil
}

// Bandera indica si se pasó la bandera con esa forma larga
func (m *Modulo) Bandera(larga string) bool {
	return m.banderas[larga]
}

// InicializarLogger configura los loggers con el nombre del módulo
func (m *Modulo) InicializarLogger(nivel string, rutaArchivo string) error {
	return InicializarLogger(nivel, m.Nombre, rutaArchivo)
}

func valorOpcion(args []string, i int) (string, error) {
	if i+1 >= len(args) || args[i+1] == "" {
		return "", fmt.Errorf("falta el valor de la opción %s", args[i])
	}
	return args[i+1], nil
}

func buscarBandera(banderas []Bandera, arg string) (Bandera, bool) {
	for _, b := range banderas {
		if arg == b.Corta || arg == b.Larga {
			return b, true
		}
	}
	return Bandera{}, false
}
