package domain

import "errors"

// ErrEmptyBase indica que la base histórica no tiene ningún concurso.
var ErrEmptyBase = errors.New("empty base")

// Draw es un concurso ya sorteado de la base histórica.
type Draw struct {
	Concurso int
	Dezenas  Game
}

// Base es la base histórica de concursos, ordenada del más antiguo al más
// reciente. Se construye una vez en la carga y no se muta después.
type Base struct {
	Draws []Draw
}

// Len devuelve la cantidad de concursos cargados.
func (b *Base) Len() int {
	return len(b.Draws)
}

// Ultimos devuelve la ventana de los n concursos más recientes. Si n supera
// el tamaño de la base devuelve la base entera; si n <= 0 devuelve nil.
func (b *Base) Ultimos(n int) []Draw {
	if n <= 0 {
		return nil
	}
	if n > len(b.Draws) {
		n = len(b.Draws)
	}
	return b.Draws[len(b.Draws)-n:]
}

// UltimoConcurso devuelve el número del concurso más reciente, o 0 si la
// base está vacía.
func (b *Base) UltimoConcurso() int {
	if len(b.Draws) == 0 {
		return 0
	}
	return b.Draws[len(b.Draws)-1].Concurso
}
