// Package fingerprint constrói as chaves de comparação entre
// detectores. A granularidade é escolhida uma única vez por execução e
// precisa ser a MESMA para os dois lados da comparação: misturar
// granularidades infla ou esvazia a sobreposição silenciosamente.
package fingerprint

import (
	"fmt"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

// Granularity define o nível de detalhe do fingerprint.
type Granularity string

const (
	// GranularityLine emite arquivo:linha:categoria por linha do
	// intervalo. Findings sem linhas degradam para arquivo:categoria;
	// sem arquivo, para categoria.
	GranularityLine Granularity = "line"
	// GranularityFile emite arquivo:categoria; sem arquivo, categoria.
	GranularityFile Granularity = "file"
	// GranularityCategory emite só a categoria.
	GranularityCategory Granularity = "category"
)

// ParseGranularity valida o valor vindo da linha de comando/config.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityLine, GranularityFile, GranularityCategory:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("granularidade '%s' não suportada (use line, file ou category)", s)
}

// Set é um conjunto de fingerprints.
type Set map[string]struct{}

// Build gera o conjunto de fingerprints de um detector. A política de
// degradação (linha -> arquivo -> categoria) é aplicada por finding,
// conforme a localização disponível, limitada pela granularidade
// escolhida.
func Build(findings []model.Finding, g Granularity) Set {
	set := make(Set)
	for _, f := range findings {
		for _, fp := range keysFor(f, g) {
			set[fp] = struct{}{}
		}
	}
	return set
}

func keysFor(f model.Finding, g Granularity) []string {
	switch {
	case g == GranularityLine && f.HasLocation():
		keys := make([]string, 0, len(f.Lines))
		for _, line := range f.Lines {
			keys = append(keys, fmt.Sprintf("%s:%d:%s", f.File, line, f.Category))
		}
		return keys
	case g != GranularityCategory && f.File != "":
		return []string{fmt.Sprintf("%s:%s", f.File, f.Category)}
	default:
		return []string{string(f.Category)}
	}
}

// Overlap é o resultado da álgebra de conjuntos entre dois detectores.
// Invariante: |Intersection| + |ExclusiveA| + |ExclusiveB| == |Union|.
type Overlap struct {
	Intersection Set
	Union        Set
	ExclusiveA   Set
	ExclusiveB   Set
}

// Compare computa intersecção, união e exclusivos de cada lado.
func Compare(a, b Set) Overlap {
	ov := Overlap{
		Intersection: make(Set),
		Union:        make(Set),
		ExclusiveA:   make(Set),
		ExclusiveB:   make(Set),
	}
	for fp := range a {
		ov.Union[fp] = struct{}{}
		if _, ok := b[fp]; ok {
			ov.Intersection[fp] = struct{}{}
		} else {
			ov.ExclusiveA[fp] = struct{}{}
		}
	}
	for fp := range b {
		ov.Union[fp] = struct{}{}
		if _, ok := a[fp]; !ok {
			ov.ExclusiveB[fp] = struct{}{}
		}
	}
	return ov
}
