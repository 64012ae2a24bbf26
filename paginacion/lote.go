package paginacion

import (
	"context"
	"sync"

	"github.com/GonzaloPontnau/MEMORIA-VIRTUAL.go/utils"
)

// ResultadoDescomposicion es la descomposición de una dirección de un lote.
type ResultadoDescomposicion struct {
	Virtual   uint64
	Direccion DireccionVirtual
	Err       error
}

// ResultadoTraduccion es la traducción de una dirección de un lote. Err
// envuelve ErrFueraDeTabla o ErrPaginaEnSwap cuando corresponde.
type ResultadoTraduccion struct {
	Virtual uint32
	Fisica  uint64
	Err     error
}

// DescomponerLote descompone varias direcciones en paralelo, con a lo sumo
// limite goroutines trabajando a la vez. Los resultados respetan el orden de entrada.
func DescomponerLote(ctx context.Context, direcciones []uint64, e Esquema, limite int) []ResultadoDescomposicion {
	return procesarLote(ctx, direcciones, limite, func(v uint64) ResultadoDescomposicion {
		return ResultadoDescomposicion{Virtual: v, Direccion: Descomponer(v, e)}
	}, func(v uint64, err error) ResultadoDescomposicion {
		return ResultadoDescomposicion{Virtual: v, Err: err}
	})
}

// TraducirLote traduce varias direcciones en paralelo. Si se cancela el
// contexto, las direcciones pendientes quedan con el error del contexto.
func (t *Traductor) TraducirLote(ctx context.Context, direcciones []uint32, limite int) []ResultadoTraduccion {
	return procesarLote(ctx, direcciones, limite, func(v uint32) ResultadoTraduccion {
		fisica, err := t.Traducir(v)
		return ResultadoTraduccion{Virtual: v, Fisica: fisica, Err: err}
	}, func(v uint32, err error) ResultadoTraduccion {
		return ResultadoTraduccion{Virtual: v, Err: err}
	})
}

func procesarLote[E, S any](ctx context.Context, entradas []E, limite int, procesar func(E) S, cancelado func(E, error) S) []S {
	resultados := make([]S, len(entradas))
	sem := utils.NewSemaforo(limite)

	var wg sync.WaitGroup
	for i, entrada := range entradas {
		if err := sem.Wait(ctx); err != nil {
			resultados[i] = cancelado(entrada, err)
			continue
		}
		wg.Add(1)
		go func(i int, entrada E) {
			defer wg.Done()
			defer sem.Signal()
			resultados[i] = procesar(entrada)
		}(i, entrada)
	}
	wg.Wait()

	return resultados
}
