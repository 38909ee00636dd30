package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

// Render produz o relatório GQM em markdown reproduzindo cada métrica
// com os mesmos valores numéricos do JSON.
func Render(result *model.ComparisonResult) string {
	var b strings.Builder

	b.WriteString("# Relatório GQM: Comparação entre LLM e SonarQube na Detecção de Code Smells\n\n")

	renderPergunta1(&b, result.Pergunta1)
	renderPergunta2(&b, result.Pergunta2)
	renderPergunta3(&b, result.Pergunta3)
	renderConclusoes(&b, result)

	return b.String()
}

func renderPergunta1(b *strings.Builder, p model.Pergunta1) {
	b.WriteString("## Pergunta 1: Qual abordagem detecta mais code smells clássicos?\n\n")

	b.WriteString("### M1: Total de Smells Detectados\n\n")
	b.WriteString("| Ferramenta | Quantidade de Smells |\n")
	b.WriteString("|------------|----------------------|\n")
	fmt.Fprintf(b, "| LLM | %d |\n", p.TotalSmells.LLM)
	fmt.Fprintf(b, "| SonarQube | %d |\n", p.TotalSmells.Sonar)
	fmt.Fprintf(b, "| Proporção LLM/SonarQube | %s |\n\n", formatRatio(float64(p.TotalSmells.ProporcaoLLMSonar)))

	b.WriteString("### M2: Taxa de Similaridade (overlap)\n\n")
	b.WriteString("| Métrica | Valor |\n")
	b.WriteString("|---------|-------|\n")
	fmt.Fprintf(b, "| Smells em comum | %d |\n", p.Similaridade.SmellsComuns)
	fmt.Fprintf(b, "| Total de smells únicos | %d |\n", p.Similaridade.TotalSmellsUnicos)
	fmt.Fprintf(b, "| Taxa de similaridade | %.2f%% |\n\n", p.Similaridade.TaxaSimilaridade)

	b.WriteString("### M3: Taxa de Divergência\n\n")
	b.WriteString("| Métrica | Valor |\n")
	b.WriteString("|---------|-------|\n")
	fmt.Fprintf(b, "| Smells exclusivos LLM | %d |\n", p.Divergencia.LLMExclusivos)
	fmt.Fprintf(b, "| Smells exclusivos SonarQube | %d |\n", p.Divergencia.SonarExclusivos)
	fmt.Fprintf(b, "| Taxa de divergência LLM | %.2f%% |\n", p.Divergencia.TaxaDivergenciaLLM)
	fmt.Fprintf(b, "| Taxa de divergência SonarQube | %.2f%% |\n\n", p.Divergencia.TaxaDivergenciaSonar)
}

func renderPergunta2(b *strings.Builder, p model.Pergunta2) {
	b.WriteString("## Pergunta 2: Qual abordagem apresenta maior amplitude de cobertura?\n\n")

	b.WriteString("### M1: Total de Arquivos Relevantes\n\n")
	fmt.Fprintf(b, "Total de arquivos relevantes: **%d**\n\n", p.ArquivosRelevantes.Total)

	b.WriteString("### M2: Cobertura por Abordagem\n\n")
	b.WriteString("| Ferramenta | Arquivos Cobertos | Porcentagem |\n")
	b.WriteString("|------------|-------------------|-------------|\n")
	fmt.Fprintf(b, "| LLM | %d | %.2f%% |\n", p.Cobertura.LLMArquivos, p.Cobertura.PercCoberturaLLM)
	fmt.Fprintf(b, "| SonarQube | %d | %.2f%% |\n\n", p.Cobertura.SonarArquivos, p.Cobertura.PercCoberturaSonar)

	b.WriteString("### M3: Médias por Arquivo\n\n")
	b.WriteString("| Ferramenta | Smells por Arquivo | Categorias por Arquivo |\n")
	b.WriteString("|------------|--------------------|------------------------|\n")
	fmt.Fprintf(b, "| LLM | %.2f | %.2f |\n", p.MediaPorArquivo.MediaSmellsLLM, p.MediaPorArquivo.MediaCategoriasLLM)
	fmt.Fprintf(b, "| SonarQube | %.2f | %.2f |\n\n", p.MediaPorArquivo.MediaSmellsSonar, p.MediaPorArquivo.MediaCategoriasSonar)
}

func renderPergunta3(b *strings.Builder, porCategoria map[model.Category]model.CategoriaMetrica) {
	b.WriteString("## Pergunta 3: Qual o desempenho e grau de concordância por categoria?\n\n")

	b.WriteString("### M1: Precisão, Recall e F1 por Categoria\n\n")
	b.WriteString("| Categoria | Precision | Recall | F1 |\n")
	b.WriteString("|-----------|-----------|--------|----|\n")
	for _, cat := range model.Categories() {
		m := porCategoria[cat].PrecisionRecallF1
		fmt.Fprintf(b, "| %s | %.4f | %.4f | %.4f |\n", cat, m.Precision, m.Recall, m.F1)
	}
	b.WriteString("\n")

	b.WriteString("### M2: Kappa de Cohen por Categoria\n\n")
	b.WriteString("| Categoria | Kappa de Cohen |\n")
	b.WriteString("|-----------|---------------|\n")
	for _, cat := range model.Categories() {
		fmt.Fprintf(b, "| %s | %.4f |\n", cat, porCategoria[cat].Kappa)
	}
	b.WriteString("\n")

	b.WriteString("### M3: Exclusividade de Detecção por Categoria\n\n")
	b.WriteString("| Categoria | Exclusivos LLM | Exclusivos SonarQube | Total |\n")
	b.WriteString("|-----------|----------------|----------------------|-------|\n")
	for _, cat := range model.Categories() {
		e := porCategoria[cat].Exclusividade
		fmt.Fprintf(b, "| %s | %d | %d | %d |\n", cat, e.ExclusivoLLM, e.ExclusivoSonar, e.Total)
	}
	b.WriteString("\n")

	b.WriteString("### M4: Sobreposição por Categoria\n\n")
	b.WriteString("| Categoria | LLM | SonarQube | Razão | Faixa |\n")
	b.WriteString("|-----------|-----|-----------|-------|-------|\n")
	for _, cat := range model.Categories() {
		o := porCategoria[cat].Overlap
		fmt.Fprintf(b, "| %s | %d | %d | %.2f%% | %s |\n", cat, o.ContagemLLM, o.ContagemSonar, o.Razao, o.Faixa)
	}
	b.WriteString("\n")
}

func renderConclusoes(b *strings.Builder, result *model.ComparisonResult) {
	b.WriteString("## Conclusões\n\n")

	p1 := result.Pergunta1
	b.WriteString("### Pergunta 1: Qual abordagem detecta mais code smells clássicos?\n\n")
	switch {
	case p1.TotalSmells.LLM > p1.TotalSmells.Sonar:
		fmt.Fprintf(b, "A abordagem LLM detectou mais code smells (%d) em comparação com o SonarQube (%d). ",
			p1.TotalSmells.LLM, p1.TotalSmells.Sonar)
	case p1.TotalSmells.Sonar > p1.TotalSmells.LLM:
		fmt.Fprintf(b, "O SonarQube detectou mais code smells (%d) em comparação com a abordagem LLM (%d). ",
			p1.TotalSmells.Sonar, p1.TotalSmells.LLM)
	default:
		fmt.Fprintf(b, "Ambas as abordagens detectaram o mesmo número de code smells (%d). ", p1.TotalSmells.LLM)
	}
	fmt.Fprintf(b, "A taxa de similaridade entre as abordagens foi de %.2f%%, indicando um grau %s de concordância entre as ferramentas.\n\n",
		p1.Similaridade.TaxaSimilaridade, grauSimilaridade(p1.Similaridade.TaxaSimilaridade))

	p2 := result.Pergunta2
	b.WriteString("### Pergunta 2: Qual abordagem apresenta maior amplitude de cobertura?\n\n")
	switch {
	case p2.Cobertura.PercCoberturaLLM > p2.Cobertura.PercCoberturaSonar:
		fmt.Fprintf(b, "A abordagem LLM apresentou maior amplitude de cobertura, analisando %.2f%% dos arquivos relevantes, enquanto o SonarQube cobriu %.2f%%. ",
			p2.Cobertura.PercCoberturaLLM, p2.Cobertura.PercCoberturaSonar)
	case p2.Cobertura.PercCoberturaSonar > p2.Cobertura.PercCoberturaLLM:
		fmt.Fprintf(b, "O SonarQube apresentou maior amplitude de cobertura, analisando %.2f%% dos arquivos relevantes, enquanto a abordagem LLM cobriu %.2f%%. ",
			p2.Cobertura.PercCoberturaSonar, p2.Cobertura.PercCoberturaLLM)
	default:
		fmt.Fprintf(b, "Ambas as abordagens apresentaram a mesma amplitude de cobertura, analisando %.2f%% dos arquivos relevantes. ",
			p2.Cobertura.PercCoberturaLLM)
	}
	fmt.Fprintf(b, "Em termos de diversidade, a LLM detectou em média %.2f categorias diferentes de smells por arquivo, enquanto o SonarQube detectou %.2f categorias.\n\n",
		p2.MediaPorArquivo.MediaCategoriasLLM, p2.MediaPorArquivo.MediaCategoriasSonar)

	b.WriteString("### Pergunta 3: Qual o desempenho e grau de concordância por categoria?\n\n")
	melhorF1, catF1 := 0.0, "Nenhuma"
	melhorKappa, catKappa := -1.0, "Nenhuma"
	for _, cat := range model.Categories() {
		m := result.Pergunta3[cat]
		if m.PrecisionRecallF1.F1 > melhorF1 {
			melhorF1, catF1 = m.PrecisionRecallF1.F1, string(cat)
		}
		if m.Kappa > melhorKappa {
			melhorKappa, catKappa = m.Kappa, string(cat)
		}
	}
	fmt.Fprintf(b, "A categoria com melhor desempenho (F1-Score) foi **%s** com F1 de %.4f. ", catF1, melhorF1)
	fmt.Fprintf(b, "O maior grau de concordância (Kappa de Cohen) foi observado na categoria **%s** com valor de %.4f, indicando um nível de concordância %s.\n",
		catKappa, melhorKappa, grauKappa(melhorKappa))
}

// Escala de interpretação usada no estudo para a taxa de similaridade.
func grauSimilaridade(taxa float64) string {
	switch {
	case taxa < 30:
		return "baixo"
	case taxa < 70:
		return "médio"
	default:
		return "alto"
	}
}

// Escala de Landis & Koch para o kappa.
func grauKappa(kappa float64) string {
	switch {
	case kappa < 0:
		return "menor que o esperado por chance"
	case kappa < 0.2:
		return "leve"
	case kappa < 0.4:
		return "razoável"
	case kappa < 0.6:
		return "moderado"
	case kappa < 0.8:
		return "substancial"
	default:
		return "quase perfeito"
	}
}

func formatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", r)
}
