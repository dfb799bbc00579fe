// Package clock permite inyectar la hora en casos de uso y repositorios en memoria.
package clock

import "time"

// Clock fuente de la hora actual.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem devuelve un reloj basado en time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// NewFixed devuelve un reloj que siempre marca el mismo instante (útil en tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
