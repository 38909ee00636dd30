package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/fingerprint"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

func llmFinding(cat model.Category, file string, lines ...int) model.Finding {
	return model.Finding{Detector: model.DetectorLLM, Category: cat, File: file, Lines: lines}
}

func sonarFinding(cat model.Category, file string, lines ...int) model.Finding {
	return model.Finding{Detector: model.DetectorSonar, Category: cat, File: file, Lines: lines}
}

func TestQuestion1TaxasSomamCem(t *testing.T) {
	llm := []model.Finding{
		llmFinding(model.CategoryLongMethod, "Pub.java", 11, 12),
		llmFinding(model.CategoryMagicNumbers, "Outro.java", 5),
	}
	sonar := []model.Finding{
		sonarFinding(model.CategoryLongMethod, "Pub.java", 12, 13),
	}

	ov := fingerprint.Compare(
		fingerprint.Build(llm, fingerprint.GranularityLine),
		fingerprint.Build(sonar, fingerprint.GranularityLine),
	)
	p1 := Question1(llm, sonar, ov)

	require.Greater(t, p1.Similaridade.TotalSmellsUnicos, 0)
	soma := p1.Similaridade.TaxaSimilaridade +
		p1.Divergencia.TaxaDivergenciaLLM +
		p1.Divergencia.TaxaDivergenciaSonar
	assert.InDelta(t, 100, soma, 1e-9, "similaridade + divergências deve somar 100")

	assert.Equal(t, 2, p1.TotalSmells.LLM)
	assert.Equal(t, 1, p1.TotalSmells.Sonar)
	assert.InDelta(t, 2.0, float64(p1.TotalSmells.ProporcaoLLMSonar), 1e-9)
}

func TestQuestion1UniaoVazia(t *testing.T) {
	ov := fingerprint.Compare(fingerprint.Set{}, fingerprint.Set{})
	p1 := Question1(nil, nil, ov)

	assert.Zero(t, p1.Similaridade.TaxaSimilaridade)
	assert.Zero(t, p1.Divergencia.TaxaDivergenciaLLM)
	assert.Zero(t, p1.Divergencia.TaxaDivergenciaSonar)
	// 0/0 dos totais também é 0, não infinito.
	assert.Zero(t, float64(p1.TotalSmells.ProporcaoLLMSonar))
}

func TestQuestion1ProporcaoInfinita(t *testing.T) {
	llm := []model.Finding{llmFinding(model.CategoryLongMethod, "Pub.java", 11)}
	ov := fingerprint.Compare(
		fingerprint.Build(llm, fingerprint.GranularityLine),
		fingerprint.Set{},
	)
	p1 := Question1(llm, nil, ov)

	assert.True(t, math.IsInf(float64(p1.TotalSmells.ProporcaoLLMSonar), 1),
		"llm/sonar com sonar zerado deve ser +Inf")
	assert.Equal(t, 100.0, p1.Divergencia.TaxaDivergenciaLLM)
}

func TestQuestion2Cobertura(t *testing.T) {
	llm := []model.Finding{
		llmFinding(model.CategoryLongMethod, "A.java", 1),
		llmFinding(model.CategoryMagicNumbers, "A.java", 2),
		llmFinding(model.CategoryGodClass, "B.java", 3),
	}
	sonar := []model.Finding{
		sonarFinding(model.CategoryLongMethod, "A.java", 1),
		sonarFinding(model.CategoryDataClass, "C.java", 9),
	}

	p2 := Question2(llm, sonar)

	assert.Equal(t, 3, p2.ArquivosRelevantes.Total)
	assert.Equal(t, []string{"A.java", "B.java", "C.java"}, p2.ArquivosRelevantes.Arquivos)

	assert.InDelta(t, 100.0*2/3, p2.Cobertura.PercCoberturaLLM, 1e-9)
	assert.InDelta(t, 100.0*2/3, p2.Cobertura.PercCoberturaSonar, 1e-9)

	// LLM: 3 smells em 2 arquivos; 2 categorias em A, 1 em B.
	assert.InDelta(t, 1.5, p2.MediaPorArquivo.MediaSmellsLLM, 1e-9)
	assert.InDelta(t, 1.5, p2.MediaPorArquivo.MediaCategoriasLLM, 1e-9)
	assert.InDelta(t, 1.0, p2.MediaPorArquivo.MediaSmellsSonar, 1e-9)

	assert.Equal(t, []string{"God Class"}, p2.MediaPorArquivo.DetalhesLLM["B.java"])
}

func TestQuestion2SemArquivos(t *testing.T) {
	p2 := Question2(nil, nil)
	assert.Zero(t, p2.ArquivosRelevantes.Total)
	assert.Zero(t, p2.Cobertura.PercCoberturaLLM)
	assert.Zero(t, p2.MediaPorArquivo.MediaSmellsLLM)
}

func TestQuestion3Contingencia(t *testing.T) {
	llm := []model.Finding{
		llmFinding(model.CategoryLongMethod, "A.java", 1, 2),
		llmFinding(model.CategoryMagicNumbers, "B.java", 7),
	}
	sonar := []model.Finding{
		sonarFinding(model.CategoryLongMethod, "A.java", 2, 3),
	}

	p3 := Question3(llm, sonar, fingerprint.GranularityLine)

	lm := p3[model.CategoryLongMethod]
	// Chaves: A.java:1 (só LLM), A.java:2 (ambos), A.java:3 (só sonar), B.java:7.
	assert.Equal(t, 1, lm.PrecisionRecallF1.TruePositives)
	assert.Equal(t, 1, lm.PrecisionRecallF1.FalsePositives)
	assert.Equal(t, 1, lm.PrecisionRecallF1.FalseNegatives)
	assert.InDelta(t, 0.5, lm.PrecisionRecallF1.Precision, 1e-9)
	assert.InDelta(t, 0.5, lm.PrecisionRecallF1.Recall, 1e-9)
	assert.InDelta(t, 0.5, lm.PrecisionRecallF1.F1, 1e-9)

	// tp+fp+fn bate com o total de chaves onde a categoria aparece.
	assert.Equal(t, 3, lm.Exclusividade.Total)
	assert.Equal(t, lm.PrecisionRecallF1.FalsePositives, lm.Exclusividade.ExclusivoLLM)
	assert.Equal(t, lm.PrecisionRecallF1.FalseNegatives, lm.Exclusividade.ExclusivoSonar)
}

func TestQuestion3DetectorZerado(t *testing.T) {
	llm := []model.Finding{llmFinding(model.CategoryLongMethod, "A.java", 1)}

	p3 := Question3(llm, nil, fingerprint.GranularityLine)

	lm := p3[model.CategoryLongMethod]
	// Sonar sem findings: precision/recall/f1/kappa degradam para 0.
	assert.Zero(t, lm.PrecisionRecallF1.Precision)
	assert.Zero(t, lm.PrecisionRecallF1.Recall)
	assert.Zero(t, lm.PrecisionRecallF1.F1)
	assert.Zero(t, lm.Kappa)
}

func TestQuestion3FaixasDeOverlap(t *testing.T) {
	var llm, sonar []model.Finding
	for i := 0; i < 10; i++ {
		llm = append(llm, llmFinding(model.CategoryLongMethod, "A.java", i+1))
	}
	for i := 0; i < 9; i++ {
		sonar = append(sonar, sonarFinding(model.CategoryLongMethod, "A.java", i+1))
	}
	llm = append(llm, llmFinding(model.CategoryMagicNumbers, "B.java", 1))

	p3 := Question3(llm, sonar, fingerprint.GranularityLine)

	assert.Equal(t, model.FaixaAlta, p3[model.CategoryLongMethod].Overlap.Faixa)
	assert.InDelta(t, 90, p3[model.CategoryLongMethod].Overlap.Razao, 1e-9)

	// Magic Numbers só no LLM: razão 0, faixa baixa.
	assert.Equal(t, model.FaixaBaixa, p3[model.CategoryMagicNumbers].Overlap.Faixa)
	assert.Zero(t, p3[model.CategoryMagicNumbers].Overlap.Razao)

	// Categoria sem findings nos dois lados: razão 0, faixa baixa.
	assert.Equal(t, model.FaixaBaixa, p3[model.CategoryFeatureEnvy].Overlap.Faixa)
}

func TestRatioHelpers(t *testing.T) {
	if got := Percent(1, 0); got != 0 {
		t.Errorf("Percent com denominador zero: esperado 0, obtido %v", got)
	}
	if got := SafeDiv(5, 0); got != 0 {
		t.Errorf("SafeDiv com denominador zero: esperado 0, obtido %v", got)
	}
	if got := RatioOrInf(0, 0); got != 0 {
		t.Errorf("RatioOrInf(0,0): esperado 0, obtido %v", got)
	}
	if got := RatioOrInf(3, 0); !math.IsInf(got, 1) {
		t.Errorf("RatioOrInf(3,0): esperado +Inf, obtido %v", got)
	}
	if got := RatioOrInf(3, 2); got != 1.5 {
		t.Errorf("RatioOrInf(3,2): esperado 1.5, obtido %v", got)
	}
}
