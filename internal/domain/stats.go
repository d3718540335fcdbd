package domain

// Stats agrega las estadísticas por dezena derivadas de la base histórica.
// Los arrays van indexados por dezena, con el índice 0 sin uso.
type Stats struct {
	// FreqTotal cuenta apariciones de cada dezena en toda la base.
	FreqTotal [MaxDezena + 1]int
	// FreqRecente cuenta apariciones en la ventana de últimos concursos.
	FreqRecente [MaxDezena + 1]int
	// Atraso cuenta concursos desde la última aparición de cada dezena.
	// Una dezena del último concurso tiene atraso 0; una que nunca salió,
	// atraso igual al total de concursos.
	Atraso [MaxDezena + 1]int

	// Concursos es el total de concursos de la base.
	Concursos int
	// Janela es cuántos concursos entraron de verdad en FreqRecente, que
	// puede ser menos que lo pedido si la base es corta.
	Janela int

	SumTotal   int
	SumRecente int
	SumAtraso  int
}

// ComputeStats recorre la base una sola vez y devuelve las estadísticas
// usando los ultimos concursos como ventana reciente.
func ComputeStats(b *Base, ultimos int) Stats {
	var s Stats
	s.Concursos = b.Len()

	var last [MaxDezena + 1]int // posición 1-based de la última aparición, 0 = nunca salió
	for i, d := range b.Draws {
		for _, dz := range d.Dezenas {
			s.FreqTotal[dz]++
			last[dz] = i + 1
		}
	}

	janela := b.Ultimos(ultimos)
	s.Janela = len(janela)
	for _, d := range janela {
		for _, dz := range d.Dezenas {
			s.FreqRecente[dz]++
		}
	}

	for dz := 1; dz <= MaxDezena; dz++ {
		if last[dz] == 0 {
			s.Atraso[dz] = s.Concursos
		} else {
			s.Atraso[dz] = s.Concursos - last[dz]
		}
		s.SumTotal += s.FreqTotal[dz]
		s.SumRecente += s.FreqRecente[dz]
		s.SumAtraso += s.Atraso[dz]
	}
	return s
}

// MediaRecente devuelve la frecuencia reciente media sobre las 25 dezenas.
func (s Stats) MediaRecente() float64 {
	return float64(s.SumRecente) / float64(MaxDezena)
}
