// Package llm implementa o detector de code smells baseado em modelo
// de linguagem (Gemini). O modelo recebe um chunk de código por vez e
// devolve o payload JSON que os adapters normalizam depois.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/adapters"
)

const maxAttempts = 5

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt())},
	}

	return &Client{client: client, model: model}, nil
}

// AnalyzeChunk envia um chunk de código e interpreta a resposta como
// LLMReport. Erros transitórios da API são repetidos com backoff
// exponencial; resposta sem JSON válido é erro para o chamador decidir.
func (c *Client) AnalyzeChunk(ctx context.Context, code string) (adapters.LLMReport, error) {
	var report adapters.LLMReport

	backoff := time.Second
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		resp, err := c.model.GenerateContent(ctx, genai.Text(code))
		if err != nil {
			lastErr = err
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(backoff):
			}
			if backoff < 60*time.Second {
				backoff *= 2
			}
			continue
		}

		text := responseText(resp)
		if text == "" {
			return report, fmt.Errorf("resposta vazia do modelo")
		}
		if err := json.Unmarshal([]byte(extractJSON(text)), &report); err != nil {
			return report, fmt.Errorf("resposta do modelo não é JSON válido: %w", err)
		}
		return report, nil
	}

	return report, fmt.Errorf("modelo indisponível após %d tentativas: %w", maxAttempts, lastErr)
}

func (c *Client) Close() {
	c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// extractJSON remove a cerca de markdown que alguns modelos insistem
// em colocar em volta do JSON.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}
	return strings.TrimSpace(text)
}
