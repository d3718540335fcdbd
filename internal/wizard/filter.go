package wizard

import (
	"math/bits"

	"lotowizard/internal/domain"
)

// FilterConfig contiene los parámetros configurables de filtrado.
type FilterConfig struct {
	// Modo decide qué umbral de repetición aplica.
	Modo domain.Mode
	// Ultimos es cuántos concursos recientes se comparan contra cada
	// candidato (y alimentan la ventana de frecuencia reciente).
	Ultimos int
	// MaxRepetidasConservador es el máximo de dezenas que un candidato
	// puede compartir con un concurso de la ventana en modo conservador.
	MaxRepetidasConservador int
	// MaxRepetidasAgressivo es el mismo umbral para el modo agressivo.
	MaxRepetidasAgressivo int
	// MaxSequencia limita las dezenas consecutivas (4 -> 01 02 03 04 pasa,
	// 01..05 no).
	MaxSequencia int
	// ScoreMinimo descarta jogos con score por debajo, 0 desactiva.
	ScoreMinimo float64
}

// DefaultFilterConfig devuelve la configuración conservadora de siempre.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Modo:                    domain.ModeConservador,
		Ultimos:                 20,
		MaxRepetidasConservador: 10,
		MaxRepetidasAgressivo:   14,
		MaxSequencia:            4,
		ScoreMinimo:             0.0,
	}
}

// Filter aplica los filtros estructurales sobre cada candidato. Todo su
// estado se precalcula en la construcción; durante el recorrido es de solo
// lectura.
type Filter struct {
	cfg    FilterConfig
	maxRep int
	janela []uint32 // máscaras de los concursos recientes
}

// NewFilter arma el filtro para la ventana de concursos dada, resolviendo
// el umbral de repetición según el modo.
func NewFilter(cfg FilterConfig, janela []domain.Draw) *Filter {
	maxRep := cfg.MaxRepetidasConservador
	if cfg.Modo == domain.ModeAgressivo {
		maxRep = cfg.MaxRepetidasAgressivo
	}
	masks := make([]uint32, len(janela))
	for i, d := range janela {
		masks[i] = d.Dezenas.Mask()
	}
	return &Filter{cfg: cfg, maxRep: maxRep, janela: masks}
}

// MaxRepetidas devuelve el umbral de repetición efectivo del modo.
func (f *Filter) MaxRepetidas() int {
	return f.maxRep
}

// Accepts devuelve true si el candidato pasa los filtros estructurales:
// no repite exacto un concurso reciente, no comparte más dezenas que el
// umbral con ninguno y no excede la secuencia máxima de consecutivas.
func (f *Filter) Accepts(g domain.Game) bool {
	if g.MaxRun() > f.cfg.MaxSequencia {
		return false
	}
	m := g.Mask()
	for _, jm := range f.janela {
		if m == jm {
			return false
		}
		if bits.OnesCount32(m&jm) > f.maxRep {
			return false
		}
	}
	return true
}

// AcceptsScore devuelve true si el score alcanza el mínimo configurado.
func (f *Filter) AcceptsScore(score float64) bool {
	return score >= f.cfg.ScoreMinimo
}
