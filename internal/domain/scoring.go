package domain

import "math"

// Pesos de cada componente del score. La suma no tiene que dar 1: lo que
// importa es el orden relativo entre jogos, no la escala absoluta.
const (
	pesoFrequencia  = 0.40
	pesoAtraso      = 0.20
	pesoParidade    = 0.15
	pesoBaixosAltos = 0.15
	pesoCobertura   = 0.10
	pesoModo        = 0.15

	// Mezcla interna del componente de frecuencia: manda la ventana
	// reciente y la base completa corrige.
	blendRecente = 0.7
	blendTotal   = 0.3

	// dezenasBaixas parte el volante en baixas (1..13) y altas (14..25).
	dezenasBaixas = 13

	// El volante se divide en 5 faixas de 5 dezenas (1-5, 6-10, ... 21-25).
	faixaSize     = 5
	numFaixas     = MaxDezena / faixaSize
	idealPorFaixa = GameSize / numFaixas

	// Peor desvío posible: las 15 dezenas apiladas en solo 3 faixas.
	maxDesvioFaixas = 12
)

// DezenaWeight devuelve el peso de una dezena: mezcla de su frecuencia
// reciente y total, ambas suavizadas con +1 para que ninguna quede en cero.
//
// Fórmula: w = 0.7 × (fr+1)/(Σfr+25) + 0.3 × (ft+1)/(Σft+25)
func DezenaWeight(s Stats, d int) float64 {
	fr := float64(s.FreqRecente[d]+1) / float64(s.SumRecente+MaxDezena)
	ft := float64(s.FreqTotal[d]+1) / float64(s.SumTotal+MaxDezena)
	return blendRecente*fr + blendTotal*ft
}

// FreqScore suma los pesos de las 15 dezenas del jogo.
func FreqScore(g Game, s Stats) float64 {
	var total float64
	for _, d := range g {
		total += DezenaWeight(s, d)
	}
	return total
}

// AtrasoScore devuelve la fracción del atraso acumulado de todo el volante
// que concentra el jogo. Premia incluir dezenas que llevan tiempo sin salir.
func AtrasoScore(g Game, s Stats) float64 {
	if s.SumAtraso == 0 {
		return 0
	}
	var total int
	for _, d := range g {
		total += s.Atraso[d]
	}
	return float64(total) / float64(s.SumAtraso)
}

// EquilibrioParidade devuelve 1 - |pares - impares| / 15. Como 15 es impar
// el máximo real es el reparto 7/8, que da 1 - 1/15.
func EquilibrioParidade(g Game) float64 {
	var pares int
	for _, d := range g {
		if d%2 == 0 {
			pares++
		}
	}
	impares := GameSize - pares
	return 1 - math.Abs(float64(pares-impares))/float64(GameSize)
}

// EquilibrioBaixosAltos devuelve 1 - |baixas - altas| / 15, contando como
// baixa toda dezena hasta la 13.
func EquilibrioBaixosAltos(g Game) float64 {
	var baixas int
	for _, d := range g {
		if d <= dezenasBaixas {
			baixas++
		}
	}
	altas := GameSize - baixas
	return 1 - math.Abs(float64(baixas-altas))/float64(GameSize)
}

// CoberturaFaixas mide qué tan repartido queda el jogo entre las 5 faixas
// del volante. Con 3 dezenas por faixa vale 1 y baja hacia 0 a medida que
// el jogo se apila en pocas faixas.
func CoberturaFaixas(g Game) float64 {
	var faixas [numFaixas]int
	for _, d := range g {
		faixas[(d-1)/faixaSize]++
	}
	var desvio int
	for _, c := range faixas {
		if c > idealPorFaixa {
			desvio += c - idealPorFaixa
		} else {
			desvio += idealPorFaixa - c
		}
	}
	return 1 - float64(desvio)/float64(maxDesvioFaixas)
}

// SeparacaoModo desplaza el score según el modo. Mide cuánto se aleja la
// frecuencia reciente media del jogo de la media del volante: el agressivo
// premia quedar por encima y el conservador penaliza alejarse en cualquier
// dirección.
//
//	delta = (mediaJogo - mediaVolante) / mediaVolante
//	agressivo   -> delta
//	conservador -> -|delta|
func SeparacaoModo(g Game, s Stats, m Mode) float64 {
	media := s.MediaRecente()
	if media == 0 {
		return 0
	}
	var total int
	for _, d := range g {
		total += s.FreqRecente[d]
	}
	mediaJogo := float64(total) / float64(GameSize)
	delta := (mediaJogo - media) / media
	if m == ModeAgressivo {
		return delta
	}
	return -math.Abs(delta)
}

// ScoreGame combina todos los componentes con los pesos fijos. Es una
// función pura: mismo jogo, mismas stats y mismo modo dan siempre el mismo
// score, sin importar el orden en que se evalúen los candidatos.
func ScoreGame(g Game, s Stats, m Mode) float64 {
	return pesoFrequencia*FreqScore(g, s) +
		pesoAtraso*AtrasoScore(g, s) +
		pesoParidade*EquilibrioParidade(g) +
		pesoBaixosAltos*EquilibrioBaixosAltos(g) +
		pesoCobertura*CoberturaFaixas(g) +
		pesoModo*SeparacaoModo(g, s, m)
}
