package llm

import (
	_ "embed"
)

//go:embed prompts/system_prompt.md
var systemPrompt string

// SystemPrompt devolve a instrução de sistema que força o modelo a
// responder no formato smells_detectados/descricao/localizacao/confianca.
func SystemPrompt() string {
	return systemPrompt
}
