package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/category"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

// LLMReport é o payload devolvido pelo detector baseado em LLM.
// descricao pode vir como mapa smell→texto ou como string única,
// dependendo do humor do modelo; os dois formatos são aceitos.
type LLMReport struct {
	SmellsDetectados []string          `json:"smells_detectados"`
	Descricao        flexibleStringMap `json:"descricao"`
	Localizacao      map[string]string `json:"localizacao"`
	Confianca        map[string]string `json:"confianca"`
}

// flexibleStringMap aceita {"smell": "texto"} ou "texto".
type flexibleStringMap struct {
	byLabel map[string]string
	single  string
}

func (f *flexibleStringMap) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &f.byLabel); err == nil {
		return nil
	}
	f.byLabel = nil
	return json.Unmarshal(b, &f.single)
}

func (f flexibleStringMap) MarshalJSON() ([]byte, error) {
	if f.byLabel != nil {
		return json.Marshal(f.byLabel)
	}
	return json.Marshal(f.single)
}

func (f flexibleStringMap) get(label string) string {
	if f.byLabel != nil {
		return f.byLabel[label]
	}
	return f.single
}

// ParseLLMBytes converte o JSON do LLM em findings normalizados. JSON
// malformado devolve lista vazia com o erro descritivo: quem chama
// loga o aviso e segue, nunca aborta por formato de dado.
func ParseLLMBytes(b []byte, norm *category.Normalizer) ([]model.Finding, error) {
	var report LLMReport
	if err := json.Unmarshal(b, &report); err != nil {
		return []model.Finding{}, fmt.Errorf("erro ao fazer parse do JSON do LLM: %w", err)
	}
	return ExtractLLM(report, norm), nil
}

func ParseLLMFile(path string, norm *category.Normalizer) ([]model.Finding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return []model.Finding{}, err
	}
	return ParseLLMBytes(b, norm)
}

// ExtractLLM aceita o payload já estruturado. Cada nome em
// smells_detectados vira um finding; localização ausente ou
// malformada rebaixa para finding sem linhas.
func ExtractLLM(report LLMReport, norm *category.Normalizer) []model.Finding {
	out := make([]model.Finding, 0, len(report.SmellsDetectados))
	for _, smell := range report.SmellsDetectados {
		file, lines := ParseLocation(report.Localizacao[smell])

		confidence := report.Confianca[smell]
		if confidence == "" {
			confidence = "médio"
		}

		out = append(out, model.Finding{
			Detector:      model.DetectorLLM,
			Category:      norm.Normalize(smell),
			OriginalLabel: smell,
			File:          file,
			Lines:         lines,
			Description:   report.Descricao.get(smell),
			Confidence:    confidence,
		})
	}
	return out
}
