// Package metrics computa as métricas do modelo GQM do estudo. Todas
// as funções são totais sobre seus insumos: conjuntos vazios e
// denominadores zero resolvem para os sentinelas documentados, nunca
// para erro.
package metrics

import (
	"fmt"
	"sort"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/fingerprint"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

// Question1 responde "qual abordagem detecta mais code smells
// clássicos": totais, taxa de similaridade e taxas de divergência
// sobre os fingerprints.
func Question1(llm, sonar []model.Finding, ov fingerprint.Overlap) model.Pergunta1 {
	union := len(ov.Union)
	return model.Pergunta1{
		TotalSmells: model.TotalSmells{
			LLM:               len(llm),
			Sonar:             len(sonar),
			ProporcaoLLMSonar: model.Metric(RatioOrInf(len(llm), len(sonar))),
		},
		Similaridade: model.Similaridade{
			SmellsComuns:      len(ov.Intersection),
			TotalSmellsUnicos: union,
			TaxaSimilaridade:  Percent(len(ov.Intersection), union),
		},
		Divergencia: model.Divergencia{
			LLMExclusivos:        len(ov.ExclusiveA),
			SonarExclusivos:      len(ov.ExclusiveB),
			TaxaDivergenciaLLM:   Percent(len(ov.ExclusiveA), union),
			TaxaDivergenciaSonar: Percent(len(ov.ExclusiveB), union),
		},
	}
}

// Question2 responde "qual abordagem apresenta maior amplitude de
// cobertura": arquivos relevantes, cobertura percentual e médias por
// arquivo (smells e categorias distintas).
func Question2(llm, sonar []model.Finding) model.Pergunta2 {
	llmFiles := filesOf(llm)
	sonarFiles := filesOf(sonar)

	all := make(map[string]struct{}, len(llmFiles)+len(sonarFiles))
	for f := range llmFiles {
		all[f] = struct{}{}
	}
	for f := range sonarFiles {
		all[f] = struct{}{}
	}
	allSorted := make([]string, 0, len(all))
	for f := range all {
		allSorted = append(allSorted, f)
	}
	sort.Strings(allSorted)

	return model.Pergunta2{
		ArquivosRelevantes: model.ArquivosRelevantes{
			Total:    len(all),
			Arquivos: allSorted,
		},
		Cobertura: model.Cobertura{
			LLMArquivos:        len(llmFiles),
			SonarArquivos:      len(sonarFiles),
			PercCoberturaLLM:   Percent(len(llmFiles), len(all)),
			PercCoberturaSonar: Percent(len(sonarFiles), len(all)),
		},
		MediaPorArquivo: model.MediaPorArquivo{
			MediaSmellsLLM:       avgPerFile(countPerFile(llm)),
			MediaSmellsSonar:     avgPerFile(countPerFile(sonar)),
			MediaCategoriasLLM:   avgCategories(categoriesPerFile(llm)),
			MediaCategoriasSonar: avgCategories(categoriesPerFile(sonar)),
			DetalhesLLM:          categoryDetails(categoriesPerFile(llm)),
			DetalhesSonar:        categoryDetails(categoriesPerFile(sonar)),
		},
	}
}

// Question3 responde "qual o desempenho e grau de concordância por
// categoria": contingência tp/fp/fn, precision/recall/F1, kappa de
// Cohen e exclusividade sobre as chaves de comparação, mais a faixa
// de sobreposição sobre as contagens brutas.
func Question3(llm, sonar []model.Finding, g fingerprint.Granularity) map[model.Category]model.CategoriaMetrica {
	det := buildDetections(llm, sonar, g)

	// Ordena as chaves para vetores de kappa determinísticos.
	keys := make([]string, 0, len(det))
	for k := range det {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	llmCounts := countPerCategory(llm)
	sonarCounts := countPerCategory(sonar)

	out := make(map[model.Category]model.CategoriaMetrica, len(model.Categories()))
	for _, cat := range model.Categories() {
		var tp, fp, fn int
		llmVec := make([]bool, 0, len(keys))
		sonarVec := make([]bool, 0, len(keys))

		for _, key := range keys {
			llmHas := det[key].llm[cat]
			sonarHas := det[key].sonar[cat]
			switch {
			case llmHas && sonarHas:
				tp++
			case llmHas:
				fp++
			case sonarHas:
				fn++
			}
			llmVec = append(llmVec, llmHas)
			sonarVec = append(sonarVec, sonarHas)
		}

		precision := SafeDiv(float64(tp), float64(tp+fp))
		recall := SafeDiv(float64(tp), float64(tp+fn))

		out[cat] = model.CategoriaMetrica{
			PrecisionRecallF1: model.PrecisionRecallF1{
				TruePositives:  tp,
				FalsePositives: fp,
				FalseNegatives: fn,
				Precision:      precision,
				Recall:         recall,
				F1:             SafeDiv(2*precision*recall, precision+recall),
			},
			Kappa: Kappa(llmVec, sonarVec),
			Exclusividade: model.Exclusividade{
				ExclusivoLLM:   fp,
				ExclusivoSonar: fn,
				Total:          tp + fp + fn,
			},
			Overlap: overlapFor(llmCounts[cat], sonarCounts[cat]),
		}
	}
	return out
}

// overlapFor classifica a concordância simétrica de uma categoria:
// min/max*100, alta quando >= 80, baixa quando <= 20.
func overlapFor(countLLM, countSonar int) model.Overlap {
	lo, hi := countLLM, countSonar
	if lo > hi {
		lo, hi = hi, lo
	}
	ratio := Percent(lo, hi)
	faixa := model.FaixaMedia
	switch {
	case ratio >= 80:
		faixa = model.FaixaAlta
	case ratio <= 20:
		faixa = model.FaixaBaixa
	}
	return model.Overlap{
		ContagemLLM:   countLLM,
		ContagemSonar: countSonar,
		Razao:         ratio,
		Faixa:         faixa,
	}
}

// detection registra, por chave de comparação, quais categorias cada
// detector marcou.
type detection struct {
	llm   map[model.Category]bool
	sonar map[model.Category]bool
}

func buildDetections(llm, sonar []model.Finding, g fingerprint.Granularity) map[string]*detection {
	det := make(map[string]*detection)
	mark := func(findings []model.Finding, pick func(*detection) map[model.Category]bool) {
		for _, f := range findings {
			for _, key := range locationKeys(f, g) {
				d, ok := det[key]
				if !ok {
					d = &detection{
						llm:   make(map[model.Category]bool),
						sonar: make(map[model.Category]bool),
					}
					det[key] = d
				}
				pick(d)[f.Category] = true
			}
		}
	}
	mark(llm, func(d *detection) map[model.Category]bool { return d.llm })
	mark(sonar, func(d *detection) map[model.Category]bool { return d.sonar })
	return det
}

// locationKeys aplica a mesma política de degradação dos fingerprints,
// mas sem a categoria embutida na chave: a categoria vira a dimensão
// analisada por cima das chaves. Findings sem arquivo caem numa chave
// global para continuarem contando.
func locationKeys(f model.Finding, g fingerprint.Granularity) []string {
	switch {
	case g == fingerprint.GranularityLine && f.HasLocation():
		keys := make([]string, 0, len(f.Lines))
		for _, line := range f.Lines {
			keys = append(keys, fmt.Sprintf("%s:%d", f.File, line))
		}
		return keys
	case g != fingerprint.GranularityCategory && f.File != "":
		return []string{f.File}
	default:
		return []string{"*"}
	}
}

func filesOf(findings []model.Finding) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range findings {
		if f.File != "" {
			out[f.File] = struct{}{}
		}
	}
	return out
}

func countPerFile(findings []model.Finding) map[string]int {
	out := make(map[string]int)
	for _, f := range findings {
		if f.File != "" {
			out[f.File]++
		}
	}
	return out
}

func categoriesPerFile(findings []model.Finding) map[string]map[model.Category]struct{} {
	out := make(map[string]map[model.Category]struct{})
	for _, f := range findings {
		if f.File == "" {
			continue
		}
		if out[f.File] == nil {
			out[f.File] = make(map[model.Category]struct{})
		}
		out[f.File][f.Category] = struct{}{}
	}
	return out
}

func countPerCategory(findings []model.Finding) map[model.Category]int {
	out := make(map[model.Category]int)
	for _, f := range findings {
		out[f.Category]++
	}
	return out
}

func avgPerFile(counts map[string]int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	return SafeDiv(float64(total), float64(len(counts)))
}

func avgCategories(perFile map[string]map[model.Category]struct{}) float64 {
	total := 0
	for _, cats := range perFile {
		total += len(cats)
	}
	return SafeDiv(float64(total), float64(len(perFile)))
}

func categoryDetails(perFile map[string]map[model.Category]struct{}) map[string][]string {
	out := make(map[string][]string, len(perFile))
	for file, cats := range perFile {
		names := make([]string, 0, len(cats))
		for c := range cats {
			names = append(names, string(c))
		}
		sort.Strings(names)
		out[file] = names
	}
	return out
}
