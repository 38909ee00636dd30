package metrics

// Kappa computa o kappa de Cohen sobre dois vetores binários pareados
// (detector A marcou a chave? detector B marcou?). Quando os vetores
// combinados têm menos de duas classes distintas o kappa é indefinido
// e a função degrada para 0 em vez de falhar.
func Kappa(a, b []bool) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}

	var tp, tn, fp, fn float64
	for i := 0; i < n; i++ {
		switch {
		case a[i] && b[i]:
			tp++
		case !a[i] && !b[i]:
			tn++
		case a[i] && !b[i]:
			fp++
		default:
			fn++
		}
	}

	// Uma classe só (todo mundo true ou todo mundo false): indefinido.
	if fp == 0 && fn == 0 && (tp == 0 || tn == 0) {
		return 0
	}

	total := float64(n)
	po := (tp + tn) / total
	pe := ((tp+fp)*(tp+fn) + (fn+tn)*(fp+tn)) / (total * total)
	if 1-pe == 0 {
		return 0
	}
	return (po - pe) / (1 - pe)
}
