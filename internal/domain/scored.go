package domain

// ScoredGame es un candidato que pasó los filtros, con su score y la
// posición seq que ocupa en la enumeración lexicográfica completa. El seq
// desempata scores iguales para que la selección final no dependa del
// tamaño de página con que se recorrió el espacio.
type ScoredGame struct {
	Jogo  Game
	Score float64
	Seq   int
}
