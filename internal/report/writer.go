// Package report materializa o ComparisonResult em artefatos: o JSON
// com todas as métricas e o relatório em markdown. Só apresentação,
// nenhuma métrica é recalculada aqui.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

const (
	JSONFileName     = "resultados_gqm.json"
	MarkdownFileName = "relatorio_gqm.md"
)

// WriteJSON grava o resultado completo em resultados_gqm.json dentro
// de outDir (criado se não existir).
func WriteJSON(result *model.ComparisonResult, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("criar dir de resultados: %w", err)
	}
	outPath := filepath.Join(outDir, JSONFileName)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal resultados: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("escrever resultados: %w", err)
	}
	return outPath, nil
}

// WriteMarkdown grava o relatório em relatorio_gqm.md dentro de outDir.
func WriteMarkdown(result *model.ComparisonResult, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("criar dir de resultados: %w", err)
	}
	outPath := filepath.Join(outDir, MarkdownFileName)

	if err := os.WriteFile(outPath, []byte(Render(result)), 0o644); err != nil {
		return "", fmt.Errorf("escrever relatório: %w", err)
	}
	return outPath, nil
}
