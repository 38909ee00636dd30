package llm

import (
	"regexp"
	"strings"
)

// Fronteiras naturais de código: declarações de classe, função ou
// método no começo de linha, nas linguagens cobertas pelo estudo.
var boundary = regexp.MustCompile(`(?m)^(class\s+\w+|def\s+\w+|func\s+\w+|(?:public|private|protected)\s+\w+)`)

// SplitIntoChunks divide o código em pedaços que caibam no limite de
// runas do modelo. Primeiro quebra nas fronteiras de declaração; o que
// ainda exceder o limite é quebrado linha a linha. Nunca divide uma
// linha nem emite chunk vazio.
func SplitIntoChunks(code string, maxSize int) []string {
	if maxSize <= 0 || len([]rune(code)) <= maxSize {
		if strings.TrimSpace(code) == "" {
			return nil
		}
		return []string{code}
	}

	var chunks []string
	for _, segment := range splitAtBoundaries(code) {
		if len([]rune(segment)) <= maxSize {
			chunks = append(chunks, segment)
			continue
		}
		chunks = append(chunks, splitByLines(segment, maxSize)...)
	}
	return chunks
}

func splitAtBoundaries(code string) []string {
	locs := boundary.FindAllStringIndex(code, -1)
	if len(locs) == 0 {
		return []string{code}
	}

	var segments []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev && strings.TrimSpace(code[prev:loc[0]]) != "" {
			segments = append(segments, code[prev:loc[0]])
		}
		if loc[0] > prev {
			prev = loc[0]
		}
	}
	segments = append(segments, code[prev:])
	return segments
}

func splitByLines(segment string, maxSize int) []string {
	var chunks []string
	var current strings.Builder

	for _, line := range strings.SplitAfter(segment, "\n") {
		if current.Len() > 0 && len([]rune(current.String()+line)) > maxSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, current.String())
	}
	return chunks
}
