package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/diagrama"
	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/paginacion"
	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/utils"
)

const uso = "Uso: ./traducir [-c config_path] [-d diagrama.png] [-t|--tabla] [direccion_hex ...]"

// Código de salida al cortar con Ctrl-C, como el de un proceso terminado por SIGINT
const codigoInterrumpido = 130

var banderaTabla = utils.Bandera{Corta: "-t", Larga: "--tabla"}

// TraducirConfig representa la configuración del programa
type TraducirConfig struct {
	LogLevel            string                  `json:"log_level"`
	LogFile             string                  `json:"log_file"`
	BitsDireccion       uint                    `json:"bits_direccion"`
	BitsOffset          uint                    `json:"bits_offset"`
	BitsPagina          uint                    `json:"bits_pagina"`
	BitsDireccionFisica uint                    `json:"bits_direccion_fisica"`
	TablaPaginas        paginacion.TablaPaginas `json:"tabla_paginas"`
	MaxConcurrencia     int                     `json:"max_concurrencia"`
}

func configPorDefecto() TraducirConfig {
	f := paginacion.FormatoDefecto()
	return TraducirConfig{
		LogLevel:            "INFO",
		LogFile:             "traducir.log",
		BitsDireccion:       f.BitsDireccion,
		BitsOffset:          f.BitsOffset,
		BitsPagina:          f.BitsPagina,
		BitsDireccionFisica: f.BitsDireccionFisica,
		MaxConcurrencia:     4,
	}
}

// completar usa la tabla de ejemplo si el archivo no trae tabla_paginas. Una
// tabla del archivo se toma entera, sin mezclarse con la de ejemplo.
func (c *TraducirConfig) completar() {
	if c.TablaPaginas == nil {
		c.TablaPaginas = paginacion.TablaEjemplo()
	}
}

func (c *TraducirConfig) formato() paginacion.Formato {
	return paginacion.Formato{
		BitsDireccion:       c.BitsDireccion,
		BitsOffset:          c.BitsOffset,
		BitsPagina:          c.BitsPagina,
		BitsDireccionFisica: c.BitsDireccionFisica,
	}
}

func main() {
	ctx, cancelar := signal.NotifyContext(context.Background(), os.Interrupt)
	codigo := ejecutar(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancelar()
	utils.CerrarLogger()
	os.Exit(codigo)
}

func ejecutar(ctx context.Context, args []string, entrada io.Reader, salida io.Writer, errores io.Writer) int {
	modulo, err := utils.NuevoModulo("Traducir", args, filepath.Join("configs", "traducir-config.json"), banderaTabla)
	if err != nil {
		fmt.Fprintf(errores, "Error: %v\n%s\n", err, uso)
		return 1
	}

	config, err := utils.CargarConfiguracion(modulo.ConfigPath, configPorDefecto(), modulo.ConfigExplicita)
	if err != nil {
		fmt.Fprintf(errores, "Error: %v\n", err)
		return 1
	}
	config.completar()

	if err := modulo.InicializarLogger(config.LogLevel, config.LogFile); err != nil {
		fmt.Fprintf(errores, "Error: %v\n", err)
		return 1
	}
	utils.InfoLog.Info("Traducir iniciado",
		"config", modulo.ConfigPath,
		"bits_direccion", config.BitsDireccion,
		"bits_pagina", config.BitsPagina,
		"bits_offset", config.BitsOffset,
		"entradas_tabla", len(config.TablaPaginas))

	traductor, err := paginacion.NuevoTraductor(config.formato(), config.TablaPaginas)
	if err != nil {
		utils.ErrorLog.Error("Formato de dirección inválido", "error", err)
		fmt.Fprintf(errores, "Error: %v\n", err)
		return 1
	}
	formato := traductor.Formato()

	if modulo.DiagramaPath != "" {
		if err := guardarDiagrama(modulo.DiagramaPath, formato); err != nil {
			utils.ErrorLog.Error("No se pudo guardar el diagrama", "ruta", modulo.DiagramaPath, "error", err)
			fmt.Fprintf(errores, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(salida, "Diagrama del formato guardado en %s\n", modulo.DiagramaPath)
	}

	// a) Formato de la dirección virtual
	imprimirFormato(salida, formato)

	if modulo.Bandera(banderaTabla.Larga) {
		volcarTabla(salida, traductor.Tabla())
	}

	// b) Traducción
	if len(modulo.Args) > 0 {
		if codigo := traducirLote(ctx, salida, errores, modulo.Args, traductor, config.MaxConcurrencia); codigo != 0 {
			return codigo
		}
	} else {
		consola := utils.ConsolaPara(entrada, salida)
		defer consola.Cerrar()

		pregunta := fmt.Sprintf("\nIngrese una dirección virtual (en hexadecimal, hasta %d bits): ", formato.BitsDireccion)
		texto, err := consola.Preguntar(ctx, pregunta)
		if ctx.Err() != nil {
			utils.InfoLog.Info("Traducir interrumpido")
			return codigoInterrumpido
		}
		if err != nil {
			utils.ErrorLog.Error("Error leyendo la dirección", "error", err)
			fmt.Fprintf(errores, "Error: no se pudo leer la dirección: %v\n", err)
			return 1
		}

		direccion, err := utils.ParsearHex(texto, int(formato.BitsDireccion))
		if err != nil {
			utils.ErrorLog.Error("Dirección inválida", "entrada", texto, "error", err)
			fmt.Fprintf(errores, "Error: %v\n", err)
			return 1
		}

		traducirUna(salida, traductor, uint32(direccion))
	}

	// c) Tamaños de los espacios de direcciones
	imprimirTamanios(salida, formato)
	return 0
}

func traducirUna(salida io.Writer, traductor *paginacion.Traductor, direccion uint32) {
	fisica, err := traductor.Traducir(direccion)
	registrarTraduccion(traductor, direccion, fisica, err)
	if err != nil {
		fmt.Fprintln(salida, mensajeFallo(err))
		return
	}
	fmt.Fprintf(salida, "Dirección física correspondiente: 0x%X\n", fisica)
}

func traducirLote(ctx context.Context, salida io.Writer, errores io.Writer, args []string, traductor *paginacion.Traductor, limite int) int {
	bits := int(traductor.Formato().BitsDireccion)
	direcciones := make([]uint32, 0, len(args))
	for _, arg := range args {
		direccion, err := utils.ParsearHex(arg, bits)
		if err != nil {
			utils.ErrorLog.Error("Dirección inválida", "entrada", arg, "error", err)
			fmt.Fprintf(errores, "Error: %v\n", err)
			return 1
		}
		direcciones = append(direcciones, uint32(direccion))
	}

	utils.InfoLog.Info("Traduciendo lote", "direcciones", len(direcciones), "concurrencia", limite)
	resultados := traductor.TraducirLote(ctx, direcciones, limite)

	fmt.Fprintln(salida)
	for _, r := range resultados {
		registrarTraduccion(traductor, r.Virtual, r.Fisica, r.Err)
		if r.Err != nil {
			fmt.Fprintf(salida, "0x%08X: %s\n", r.Virtual, mensajeFallo(r.Err))
			continue
		}
		fmt.Fprintf(salida, "0x%08X: dirección física 0x%X\n", r.Virtual, r.Fisica)
	}

	m := paginacion.MetricasDeLote(resultados)
	utils.InfoLog.Info("Lote traducido",
		"total", m.Total(),
		"traducidas", m.Traducidas,
		"fuera_de_tabla", m.FueraTabla,
		"en_swap", m.EnSwap,
		"otros_errores", m.OtrosErrores)
	fmt.Fprintf(salida, "Traducidas: %d - Fuera de la tabla: %d - En swap: %d\n", m.Traducidas, m.FueraTabla, m.EnSwap)
	return 0
}

func registrarTraduccion(traductor *paginacion.Traductor, direccion uint32, fisica uint64, err error) {
	pagina := traductor.Pagina(direccion)
	offset := traductor.Offset(direccion)
	if err != nil {
		utils.InfoLog.Warn("Dirección no traducible",
			"virtual", fmt.Sprintf("0x%08X", direccion),
			"pagina", pagina,
			"offset", offset,
			"error", err)
		return
	}
	utils.InfoLog.Info("Dirección traducida",
		"virtual", fmt.Sprintf("0x%08X", direccion),
		"pagina", pagina,
		"offset", offset,
		"fisica", fmt.Sprintf("0x%X", fisica))
}

func mensajeFallo(err error) string {
	switch {
	case errors.Is(err, paginacion.ErrFueraDeTabla):
		return "Número de página fuera de los límites de la tabla."
	case errors.Is(err, paginacion.ErrPaginaEnSwap):
		return "La página está en swap, no en memoria física."
	default:
		return fmt.Sprintf("No se pudo traducir la dirección: %v", err)
	}
}

func guardarDiagrama(ruta string, formato paginacion.Formato) error {
	campos := []diagrama.Campo{
		{Nombre: "pagina", Bits: formato.BitsPagina},
		{Nombre: "offset", Bits: formato.BitsOffset},
	}
	titulo := fmt.Sprintf("Direccion virtual de %d bits (una tabla)", formato.BitsDireccion)
	return diagrama.GuardarPNG(ruta, titulo, formato.BitsDireccion, campos)
}
