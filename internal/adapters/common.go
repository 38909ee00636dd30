package adapters

import (
	"strconv"
	"strings"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

// ParseLocation interpreta localizações no formato "arquivo:inicio-fim"
// devolvidas pelo LLM. Falhas de parse (sem separador, intervalo não
// numérico) degradam para lines vazio em vez de erro: a ausência de
// localização não é fatal, só rebaixa a granularidade do fingerprint.
func ParseLocation(loc string) (file string, lines []int) {
	if !strings.Contains(loc, ":") {
		return "", nil
	}
	parts := strings.SplitN(loc, ":", 2)
	file = parts[0]
	linePart := parts[1]

	if !strings.Contains(linePart, "-") {
		return file, nil
	}
	bounds := strings.SplitN(linePart, "-", 2)
	start, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
	end, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err1 != nil || err2 != nil {
		return file, nil
	}
	return file, expandRange(start, end)
}

// expandRange materializa o intervalo inclusivo [start, end].
func expandRange(start, end int) []int {
	if start <= 0 || end < start {
		return nil
	}
	lines := make([]int, 0, end-start+1)
	for l := start; l <= end; l++ {
		lines = append(lines, l)
	}
	return lines
}

// baseComponent extrai o nome do arquivo de um component do SonarQube
// ("projeto:caminho/Arquivo.java" -> "caminho/Arquivo.java").
func baseComponent(component string) string {
	if !strings.Contains(component, ":") {
		return component
	}
	parts := strings.Split(component, ":")
	return parts[len(parts)-1]
}

// Files coleta o conjunto de arquivos distintos referenciados pelos
// findings de um detector (usado nas métricas de cobertura).
func Files(findings []model.Finding) map[string]struct{} {
	out := make(map[string]struct{})
	for _, f := range findings {
		if f.File != "" {
			out[f.File] = struct{}{}
		}
	}
	return out
}
