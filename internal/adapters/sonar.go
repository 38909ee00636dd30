package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/category"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

// SonarReport é o payload do endpoint api/issues/search do SonarQube
// (mesmo formato que o conversor de CheckStyle produz).
type SonarReport struct {
	Issues []SonarIssue `json:"issues"`
}

type SonarIssue struct {
	Type      string     `json:"type"`
	Rule      string     `json:"rule"`
	Component string     `json:"component"`
	Message   string     `json:"message"`
	Severity  string     `json:"severity"`
	Line      *int       `json:"line,omitempty"`
	TextRange *TextRange `json:"textRange,omitempty"`
}

type TextRange struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// ParseSonarBytes converte o JSON do SonarQube em findings
// normalizados. Só issues do tipo CODE_SMELL entram na comparação.
// JSON malformado devolve lista vazia com o erro descritivo.
func ParseSonarBytes(b []byte, norm *category.Normalizer) ([]model.Finding, error) {
	var report SonarReport
	if err := json.Unmarshal(b, &report); err != nil {
		return []model.Finding{}, fmt.Errorf("erro ao fazer parse do JSON do SonarQube: %w", err)
	}
	return ExtractSonar(report, norm), nil
}

func ParseSonarFile(path string, norm *category.Normalizer) ([]model.Finding, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return []model.Finding{}, err
	}
	return ParseSonarBytes(b, norm)
}

// ExtractSonar aceita o payload já estruturado. A linha única de
// "line" tem prioridade sobre o textRange, seguindo o formato da API.
func ExtractSonar(report SonarReport, norm *category.Normalizer) []model.Finding {
	var out []model.Finding
	for _, issue := range report.Issues {
		if issue.Type != "CODE_SMELL" {
			continue
		}

		var lines []int
		switch {
		case issue.Line != nil:
			lines = expandRange(*issue.Line, *issue.Line)
		case issue.TextRange != nil:
			lines = expandRange(issue.TextRange.StartLine, issue.TextRange.EndLine)
		}

		out = append(out, model.Finding{
			Detector:      model.DetectorSonar,
			Category:      norm.Normalize(issue.Rule),
			OriginalLabel: issue.Rule,
			File:          baseComponent(issue.Component),
			Lines:         lines,
			Description:   issue.Message,
			Severity:      issue.Severity,
		})
	}
	return out
}
