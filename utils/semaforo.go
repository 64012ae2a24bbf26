package utils

import "context"

// Semaforo implementa un semáforo contador con canales. Cada Wait ocupa un
// lugar del canal y cada Signal lo libera.
type Semaforo struct {
	c chan struct{}
}

// NewSemaforo crea un semáforo que deja pasar hasta capacidad goroutines a la vez
func NewSemaforo(capacidad int) *Semaforo {
	if capacidad <= 0 {
		capacidad = 1
	}
	return &Semaforo{
		c: make(chan struct{}, capacidad),
	}
}

// Wait (P) ocupa un lugar; bloquea hasta que haya uno libre o se cancele el contexto
func (s *Semaforo) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.c <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Signal (V) libera un lugar
func (s *Semaforo) Signal() {
	select {
	case <-s.c:
	default:
		// Nadie lo tenía tomado, no hace nada
	}
}

// TryWait intenta ocupar un lugar sin bloquear
func (s *Semaforo) TryWait() bool {
	select {
	case s.c <- struct{}{}:
		return true
	default:
		return false
	}
}

// Capacidad devuelve cuántas goroutines pueden pasar a la vez
func (s *Semaforo) Capacidad() int {
	return cap(s.c)
}

// EnUso devuelve cuántos lugares están ocupados
func (s *Semaforo) EnUso() int {
	return len(s.c)
}
