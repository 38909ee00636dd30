package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestMetricRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"fracionario", 1.5},
		{"negativo", -0.25},
		{"infinito", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(Metric(tt.value))
			if err != nil {
				t.Fatalf("erro inesperado na serialização: %v", err)
			}
			var back Metric
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("erro inesperado na desserialização: %v", err)
			}
			if float64(back) != tt.value {
				t.Errorf("esperado %v, obtido %v", tt.value, float64(back))
			}
		})
	}
}

func TestMetricInfinityLiteral(t *testing.T) {
	b, err := json.Marshal(Metric(math.Inf(1)))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if string(b) != `"Infinity"` {
		t.Errorf(`esperado "Infinity", obtido %s`, b)
	}
}

func TestMetricUnmarshalInvalido(t *testing.T) {
	var m Metric
	if err := json.Unmarshal([]byte(`"abc"`), &m); err == nil {
		t.Error("esperado erro para métrica não numérica")
	}
}

func TestComparisonResultRoundTrip(t *testing.T) {
	original := &ComparisonResult{
		Pergunta1: Pergunta1{
			TotalSmells:  TotalSmells{LLM: 5, Sonar: 0, ProporcaoLLMSonar: Metric(math.Inf(1))},
			Similaridade: Similaridade{SmellsComuns: 0, TotalSmellsUnicos: 5, TaxaSimilaridade: 0},
			Divergencia:  Divergencia{LLMExclusivos: 5, TaxaDivergenciaLLM: 100},
		},
		Pergunta2: Pergunta2{
			ArquivosRelevantes: ArquivosRelevantes{Total: 1, Arquivos: []string{"Pub.java"}},
			Cobertura:          Cobertura{LLMArquivos: 1, PercCoberturaLLM: 100},
			MediaPorArquivo: MediaPorArquivo{
				MediaSmellsLLM: 5,
				DetalhesLLM:    map[string][]string{"Pub.java": {"Long Method"}},
			},
		},
		Pergunta3: map[Category]CategoriaMetrica{
			CategoryLongMethod: {
				PrecisionRecallF1: PrecisionRecallF1{TruePositives: 0, FalsePositives: 5, Precision: 0},
				Kappa:             0,
				Exclusividade:     Exclusividade{ExclusivoLLM: 5, Total: 5},
				Overlap:           Overlap{ContagemLLM: 5, Razao: 0, Faixa: FaixaBaixa},
			},
		},
	}

	b, err := json.MarshalIndent(original, "", "  ")
	if err != nil {
		t.Fatalf("erro inesperado na serialização: %v", err)
	}

	// As chaves do contrato de saída têm que estar presentes.
	for _, key := range []string{"m1_total_smells", "taxa_similaridade", "proporcao_llm_sonar", "m2_kappa", "m3_exclusividade", "m4_overlap"} {
		if !strings.Contains(string(b), key) {
			t.Errorf("chave %q ausente no JSON", key)
		}
	}

	var back ComparisonResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("erro inesperado na desserialização: %v", err)
	}
	if !math.IsInf(float64(back.Pergunta1.TotalSmells.ProporcaoLLMSonar), 1) {
		t.Error("proporção infinita perdida no round-trip")
	}
	if back.Pergunta3[CategoryLongMethod].Exclusividade.ExclusivoLLM != 5 {
		t.Errorf("pergunta3 corrompida no round-trip: %+v", back.Pergunta3)
	}
}
