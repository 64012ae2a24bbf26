package paginacion

import "errors"

// Metricas cuenta el resultado de un lote de traducciones.
type Metricas struct {
	Traducidas   int
	FueraTabla   int
	EnSwap       int
	OtrosErrores int
}

// Registrar suma un resultado al conteo que le corresponde
func (m *Metricas) Registrar(err error) {
	switch {
	case err == nil:
		m.Traducidas++
	case errors.Is(err, ErrFueraDeTabla):
		m.FueraTabla++
	case errors.Is(err, ErrPaginaEnSwap):
		m.EnSwap++
	default:
		m.OtrosErrores++
	}
}

// Total devuelve la cantidad de direcciones registradas
func (m *Metricas) Total() int {
	return m.Traducidas + m.FueraTabla + m.EnSwap + m.OtrosErrores
}

// MetricasDeLote arma las métricas de un lote ya traducido.
func MetricasDeLote(resultados []ResultadoTraduccion) Metricas {
	var m Metricas
	for _, r := range resultados {
		m.Registrar(r.Err)
	}
	return m
}
