// Package comparator orquestra uma execução da comparação entre os
// dois detectores: extração -> fingerprints -> métricas. Cada
// Comparator é dono das suas listas de findings e dos conjuntos
// derivados; não existe estado global entre execuções.
package comparator

import (
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/adapters"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/category"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/fingerprint"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/metrics"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

type Comparator struct {
	granularity fingerprint.Granularity
	llm         []model.Finding
	sonar       []model.Finding
}

// New monta um comparador a partir de findings já extraídos. A
// granularidade vale para os DOIS lados: como ela é fixada aqui, é
// impossível comparar conjuntos construídos em níveis diferentes.
func New(llm, sonar []model.Finding, g fingerprint.Granularity) *Comparator {
	return &Comparator{granularity: g, llm: llm, sonar: sonar}
}

// NewFromPayloads extrai os dois payloads brutos (JSON serializado).
// Payload malformado degrada para lista vazia e o erro volta como
// aviso; a comparação nunca aborta por formato de dado.
func NewFromPayloads(llmPayload, sonarPayload []byte, norm *category.Normalizer, g fingerprint.Granularity) (*Comparator, []error) {
	var warnings []error

	llm, err := adapters.ParseLLMBytes(llmPayload, norm)
	if err != nil {
		warnings = append(warnings, err)
	}
	sonar, err := adapters.ParseSonarBytes(sonarPayload, norm)
	if err != nil {
		warnings = append(warnings, err)
	}

	return New(llm, sonar, g), warnings
}

// Run computa as três perguntas do GQM e monta o resultado, imutável
// depois de devolvido.
func (c *Comparator) Run() *model.ComparisonResult {
	ov := fingerprint.Compare(
		fingerprint.Build(c.llm, c.granularity),
		fingerprint.Build(c.sonar, c.granularity),
	)

	return &model.ComparisonResult{
		Pergunta1: metrics.Question1(c.llm, c.sonar, ov),
		Pergunta2: metrics.Question2(c.llm, c.sonar),
		Pergunta3: metrics.Question3(c.llm, c.sonar, c.granularity),
	}
}
