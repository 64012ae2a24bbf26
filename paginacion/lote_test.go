package paginacion

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestTraducirLoteRespetaElOrden(t *testing.T) {
	traductor, err := NuevoTraductor(FormatoDefecto(), TablaEjemplo())
	if err != nil {
		t.Fatalf("NuevoTraductor() error = %v", err)
	}

	var direcciones []uint32
	for v := uint32(0); v < 0xA000; v += 0x3F1 {
		direcciones = append(direcciones, v)
	}

	for _, limite := range []int{0, 1, 3, 64} {
		resultados := traductor.TraducirLote(context.Background(), direcciones, limite)
		if len(resultados) != len(direcciones) {
			t.Fatalf("limite %d: %d resultados, want %d", limite, len(resultados), len(direcciones))
		}
		for i, r := range resultados {
			fisica, err := traductor.Traducir(direcciones[i])
			if r.Virtual != direcciones[i] || r.Fisica != fisica || !reflect.DeepEqual(r.Err, err) {
				t.Errorf("limite %d, posición %d: %+v, want (0x%X, %d, %v)", limite, i, r, direcciones[i], fisica, err)
			}
		}
	}
}

func TestDescomponerLote(t *testing.T) {
	direcciones := []uint64{0, 0x12345678, 0xFFFFFFFFF, 0xABC}
	resultados := DescomponerLote(context.Background(), direcciones, EsquemaDefecto(), 2)

	for i, r := range resultados {
		if r.Err != nil {
			t.Fatalf("posición %d: error inesperado %v", i, r.Err)
		}
		if r.Virtual != direcciones[i] {
			t.Errorf("posición %d: Virtual = 0x%X, want 0x%X", i, r.Virtual, direcciones[i])
		}
		if !reflect.DeepEqual(r.Direccion, DescomponerDefecto(direcciones[i])) {
			t.Errorf("posición %d: %+v", i, r.Direccion)
		}
	}
}

func TestLoteConContextoCancelado(t *testing.T) {
	traductor, err := NuevoTraductor(FormatoDefecto(), TablaEjemplo())
	if err != nil {
		t.Fatalf("NuevoTraductor() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resultados := traductor.TraducirLote(ctx, []uint32{0x0, 0x2005}, 1)
	for i, r := range resultados {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("posición %d: error = %v, want context.Canceled", i, r.Err)
		}
	}

	m := MetricasDeLote(resultados)
	if m.OtrosErrores != 2 || m.Traducidas != 0 {
		t.Errorf("métricas = %+v", m)
	}
}

func TestMetricasDeLote(t *testing.T) {
	traductor, err := NuevoTraductor(FormatoDefecto(), TablaEjemplo())
	if err != nil {
		t.Fatalf("NuevoTraductor() error = %v", err)
	}

	resultados := traductor.TraducirLote(context.Background(), []uint32{0x0, 0x1000, 0x2005, 0x8000, 0x7000}, 2)
	m := MetricasDeLote(resultados)

	esperadas := Metricas{Traducidas: 2, FueraTabla: 1, EnSwap: 2}
	if m != esperadas {
		t.Errorf("MetricasDeLote() = %+v, want %+v", m, esperadas)
	}
	if m.Total() != 5 {
		t.Errorf("Total() = %d, want 5", m.Total())
	}
}
