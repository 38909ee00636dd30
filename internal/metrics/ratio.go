package metrics

import "math"

// Política única de denominador zero para todas as métricas: divisão
// por zero resolve para 0, nunca para erro ou NaN. A exceção é
// RatioOrInf, usada apenas na proporção entre os totais.

// Percent devolve num/den*100, ou 0 quando den == 0.
func Percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

// SafeDiv devolve num/den, ou 0 quando den == 0.
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// RatioOrInf devolve num/den; quando den == 0 devolve +Inf se houver
// numerador e 0 no caso 0/0. É o único ponto do cálculo autorizado a
// produzir infinito.
func RatioOrInf(num, den int) float64 {
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return float64(num) / float64(den)
}
