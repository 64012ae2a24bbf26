package paginacion

import "fmt"

// ParametrosAcceso son los datos del cálculo de tiempo promedio de acceso.
// Los tiempos están en nanosegundos.
type ParametrosAcceso struct {
	TasaAciertoTLB float64
	TiempoTLB      float64
	TiempoMemoria  float64
	Niveles        int
}

// ParametrosDefecto: 90% de aciertos, TLB de 8 ns, memoria de 70 ns y tres niveles.
func ParametrosDefecto() ParametrosAcceso {
	return ParametrosAcceso{
		TasaAciertoTLB: 0.9,
		TiempoTLB:      8,
		TiempoMemoria:  70,
		Niveles:        3,
	}
}

// Validar controla que la tasa esté en [0, 1], que los tiempos no sean negativos y que haya niveles.
func (p ParametrosAcceso) Validar() error {
	if p.TasaAciertoTLB < 0 || p.TasaAciertoTLB > 1 {
		return fmt.Errorf("tasa de aciertos de TLB fuera de [0, 1]: %v", p.TasaAciertoTLB)
	}
	if p.TiempoTLB < 0 || p.TiempoMemoria < 0 {
		return fmt.Errorf("los tiempos de acceso no pueden ser negativos")
	}
	if p.Niveles < 1 {
		return fmt.Errorf("se necesita al menos un nivel de tablas, hay %d", p.Niveles)
	}
	return nil
}

// TiempoAccesoPromedio calcula el tiempo promedio de acceso a memoria sin fallo
// de página: en un acierto de TLB se paga el TLB, en un fallo se recorre una
// tabla por nivel, y siempre se hace el acceso final a memoria.
func TiempoAccesoPromedio(p ParametrosAcceso) float64 {
	tiempoTLB := p.TasaAciertoTLB * p.TiempoTLB
	tiempoTablas := (1 - p.TasaAciertoTLB) * (float64(p.Niveles) * p.TiempoMemoria)
	return tiempoTLB + tiempoTablas + p.TiempoMemoria
}
