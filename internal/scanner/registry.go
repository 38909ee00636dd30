// Package scanner executa os detectores externos e captura seus
// payloads brutos. Os payloads gravados aqui são o que o comando
// compare consome depois.
package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/config"
)

type DetectorFunc func(cfg *config.Config, path string) ([]byte, error)

var detectors = map[string]DetectorFunc{
	"sonar":      RunSonar,
	"checkstyle": RunCheckstyle,
}

// Execute roda o detector pedido sobre o caminho indicado e devolve o
// payload bruto junto com o arquivo onde ele deve ser salvo.
func Execute(name string, cfg *config.Config, path string) ([]byte, string, error) {
	fn, ok := detectors[name]
	if !ok {
		return nil, "", fmt.Errorf("detector '%s' não suportado", name)
	}

	output, err := fn(cfg, path)
	if err != nil {
		return nil, "", err
	}

	outputPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-payload.json", name))
	return output, outputPath, nil
}
