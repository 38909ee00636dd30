package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/llm"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/sources"
)

// chunkResult é o artefato salvo por chunk analisado, no mesmo formato
// que o comando compare espera encontrar no campo result.
type chunkResult struct {
	File       string      `json:"file"`
	ChunkIndex int         `json:"chunk_index"`
	Result     interface{} `json:"result"`
}

var llmCmd = &cobra.Command{
	Use:   "llm [caminho]",
	Short: "Analisa os arquivos de código do projeto com o detector LLM",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := setup()
		path := args[0]

		apiKey := cfg.APIKey()
		if apiKey == "" {
			logger.Errorf("Defina a chave da API na variável de ambiente %s", cfg.LLM.APIKeyEnv)
			os.Exit(1)
		}

		ctx := context.Background()
		client, err := llm.NewClient(ctx, apiKey, cfg.LLM.Model)
		if err != nil {
			logger.Errorw("Erro ao criar cliente do LLM", "erro", err)
			os.Exit(1)
		}
		defer client.Close()

		files, err := sources.DetectSourceFiles(path, cfg.LLM.CodeExtensions)
		if err != nil {
			logger.Errorw("Erro ao varrer arquivos de código", "erro", err)
			os.Exit(1)
		}
		logger.Infof("Analisando %d arquivo(s) de código com o modelo %s", len(files), cfg.LLM.Model)

		outDir := filepath.Join(cfg.OutputDir, "llm")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			logger.Errorw("Erro ao criar diretório de saída", "erro", err)
			os.Exit(1)
		}

		for _, file := range files {
			code, err := os.ReadFile(filepath.Join(path, filepath.FromSlash(file.Path)))
			if err != nil {
				logger.Warnw("Erro ao ler arquivo, pulando", "arquivo", file.Path, "erro", err)
				continue
			}

			for idx, chunk := range llm.SplitIntoChunks(string(code), cfg.LLM.MaxChunkSize) {
				report, err := client.AnalyzeChunk(ctx, chunk)
				if err != nil {
					logger.Warnw("Erro na análise do chunk, pulando", "arquivo", file.Path, "chunk", idx+1, "erro", err)
					continue
				}

				out := chunkResult{File: file.Path, ChunkIndex: idx + 1, Result: report}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					logger.Warnw("Erro ao serializar resultado", "arquivo", file.Path, "erro", err)
					continue
				}

				fname := fmt.Sprintf("%s_chunk%d.json", strings.ReplaceAll(file.Path, "/", "__"), idx+1)
				if err := os.WriteFile(filepath.Join(outDir, fname), data, 0o644); err != nil {
					logger.Warnw("Erro ao salvar resultado", "arquivo", fname, "erro", err)
					continue
				}
				logger.Debugf("[LLM] %s chunk %d salvo", file.Path, idx+1)
			}
		}

		logger.Infof("Análise LLM concluída, resultados em %s", outDir)
	},
}

func init() {
	rootCmd.AddCommand(llmCmd)
}
