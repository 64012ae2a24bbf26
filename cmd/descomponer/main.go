package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/diagrama"
	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/paginacion"
	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/utils"
)

const uso = "Uso: ./descomponer [-c config_path] [-d diagrama.png] [direccion_hex ...]"

// Código de salida al cortar con Ctrl-C, como el de un proceso terminado por SIGINT
const codigoInterrumpido = 130

// DescomponerConfig representa la configuración del programa
type DescomponerConfig struct {
	LogLevel        string  `json:"log_level"`
	LogFile         string  `json:"log_file"`
	BitsDireccion   uint    `json:"bits_direccion"`
	BitsOffset      uint    `json:"bits_offset"`
	BitsPorNivel    []uint  `json:"bits_por_nivel"`
	TasaAciertoTLB  float64 `json:"tasa_acierto_tlb"`
	TiempoTLBNs     float64 `json:"tiempo_tlb_ns"`
	TiempoMemoriaNs float64 `json:"tiempo_memoria_ns"`
	MaxConcurrencia int     `json:"max_concurrencia"`
}

func configPorDefecto() DescomponerConfig {
	e := paginacion.EsquemaDefecto()
	p := paginacion.ParametrosDefecto()
	return DescomponerConfig{
		LogLevel:        "INFO",
		LogFile:         "descomponer.log",
		BitsDireccion:   e.BitsDireccion,
		BitsOffset:      e.BitsOffset,
		TasaAciertoTLB:  p.TasaAciertoTLB,
		TiempoTLBNs:     p.TiempoTLB,
		TiempoMemoriaNs: p.TiempoMemoria,
		MaxConcurrencia: 4,
	}
}

// completar aplica los valores por defecto de las listas que el archivo no trae.
// Una lista del archivo reemplaza entera a la de ejemplo.
func (c *DescomponerConfig) completar() {
	if c.BitsPorNivel == nil {
		c.BitsPorNivel = paginacion.EsquemaDefecto().BitsPorNivel
	}
}

func (c *DescomponerConfig) esquema() paginacion.Esquema {
	return paginacion.Esquema{
		BitsDireccion: c.BitsDireccion,
		BitsOffset:    c.BitsOffset,
		BitsPorNivel:  c.BitsPorNivel,
	}
}

// La cantidad de niveles sale del esquema: un acceso a memoria por tabla
func (c *DescomponerConfig) parametros(niveles int) paginacion.ParametrosAcceso {
	return paginacion.ParametrosAcceso{
		TasaAciertoTLB: c.TasaAciertoTLB,
		TiempoTLB:      c.TiempoTLBNs,
		TiempoMemoria:  c.TiempoMemoriaNs,
		Niveles:        niveles,
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
	modulo, err := utils.NuevoModulo("Descomponer", args, filepath.Join("configs", "descomponer-config.json"))
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
	utils.InfoLog.Info("Descomponer iniciado",
		"config", modulo.ConfigPath,
		"bits_direccion", config.BitsDireccion,
		"bits_por_nivel", config.BitsPorNivel,
		"bits_offset", config.BitsOffset)

	esquema := config.esquema()
	if err := esquema.Validar(); err != nil {
		utils.ErrorLog.Error("Esquema de dirección inválido", "error", err)
		fmt.Fprintf(errores, "Error: %v\n", err)
		return 1
	}
	parametros := config.parametros(esquema.Niveles())
	if err := parametros.Validar(); err != nil {
		utils.ErrorLog.Error("Parámetros de acceso inválidos", "error", err)
		fmt.Fprintf(errores, "Error: %v\n", err)
		return 1
	}

	if modulo.DiagramaPath != "" {
		if err := guardarDiagrama(modulo.DiagramaPath, esquema); err != nil {
			utils.ErrorLog.Error("No se pudo guardar el diagrama", "ruta", modulo.DiagramaPath, "error", err)
			fmt.Fprintf(errores, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(salida, "Diagrama del formato guardado en %s\n", modulo.DiagramaPath)
	}

	tiempo := paginacion.TiempoAccesoPromedio(parametros)
	utils.InfoLog.Debug("Tiempo promedio de acceso calculado",
		"tasa_acierto_tlb", parametros.TasaAciertoTLB,
		"niveles", parametros.Niveles,
		"tiempo_ns", tiempo)

	if len(modulo.Args) > 0 {
		return descomponerLote(ctx, salida, errores, modulo.Args, esquema, config.MaxConcurrencia, tiempo)
	}

	consola := utils.ConsolaPara(entrada, salida)
	defer consola.Cerrar()

	texto, err := consola.Preguntar(ctx, fmt.Sprintf("Ingrese una dirección virtual (en hexadecimal, hasta %d bits): ", esquema.BitsDireccion))
	if ctx.Err() != nil {
		utils.InfoLog.Info("Descomponer interrumpido")
		return codigoInterrumpido
	}
	if err != nil {
		utils.ErrorLog.Error("Error leyendo la dirección", "error", err)
		fmt.Fprintf(errores, "Error: no se pudo leer la dirección: %v\n", err)
		return 1
	}

	direccion, err := utils.ParsearHex(texto, int(esquema.BitsDireccion))
	if err != nil {
		utils.ErrorLog.Error("Dirección inválida", "entrada", texto, "error", err)
		fmt.Fprintf(errores, "Error: %v\n", err)
		return 1
	}

	d := paginacion.Descomponer(direccion, esquema)
	utils.InfoLog.Info("Dirección descompuesta",
		"virtual", fmt.Sprintf("0x%X", direccion),
		"indices", d.Indices,
		"offset", d.Offset)

	imprimirDescomposicion(salida, d)
	imprimirTiempo(salida, tiempo)
	return 0
}

func descomponerLote(ctx context.Context, salida io.Writer, errores io.Writer, args []string, esquema paginacion.Esquema, limite int, tiempo float64) int {
	direcciones := make([]uint64, 0, len(args))
	for _, arg := range args {
		direccion, err := utils.ParsearHex(arg, int(esquema.BitsDireccion))
		if err != nil {
			utils.ErrorLog.Error("Dirección inválida", "entrada", arg, "error", err)
			fmt.Fprintf(errores, "Error: %v\n", err)
			return 1
		}
		direcciones = append(direcciones, direccion)
	}

	utils.InfoLog.Info("Descomponiendo lote", "direcciones", len(direcciones), "concurrencia", limite)
	resultados := paginacion.DescomponerLote(ctx, direcciones, esquema, limite)

	codigo := 0
	for _, r := range resultados {
		if r.Err != nil {
			utils.ErrorLog.Warn("Dirección sin procesar", "virtual", fmt.Sprintf("0x%X", r.Virtual), "error", r.Err)
			fmt.Fprintf(errores, "Dirección virtual 0x%X: %v\n", r.Virtual, r.Err)
			codigo = 1
			continue
		}
		fmt.Fprintf(salida, "Dirección virtual 0x%X\n", r.Virtual)
		imprimirDescomposicion(salida, r.Direccion)
	}

	imprimirTiempo(salida, tiempo)
	return codigo
}

func guardarDiagrama(ruta string, esquema paginacion.Esquema) error {
	campos := make([]diagrama.Campo, 0, esquema.Niveles()+1)
	for i, bits := range esquema.BitsPorNivel {
		campos = append(campos, diagrama.Campo{Nombre: fmt.Sprintf("nivel %d", i+1), Bits: bits})
	}
	campos = append(campos, diagrama.Campo{Nombre: "offset", Bits: esquema.BitsOffset})

	titulo := fmt.Sprintf("Direccion virtual de %d bits (%d niveles)", esquema.BitsDireccion, esquema.Niveles())
	return diagrama.GuardarPNG(ruta, titulo, esquema.BitsDireccion, campos)
}
