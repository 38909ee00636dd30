package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/category"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/comparator"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/config"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/fingerprint"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/report"
)

var (
	llmPayloadPath   string
	sonarPayloadPath string
	granularityFlag  string
	outputDirFlag    string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compara os payloads do LLM e do SonarQube e gera o relatório GQM",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := setup()

		if granularityFlag != "" {
			cfg.Granularity = granularityFlag
		}
		if outputDirFlag != "" {
			cfg.OutputDir = outputDirFlag
		}

		// A granularidade é decidida UMA vez e vale para os dois
		// detectores; é isso que mantém as taxas de sobreposição
		// comparáveis.
		gran, err := fingerprint.ParseGranularity(cfg.Granularity)
		if err != nil {
			logger.Errorw("Granularidade inválida", "erro", err)
			os.Exit(1)
		}

		llmPayload, err := os.ReadFile(llmPayloadPath)
		if err != nil {
			logger.Errorw("Erro ao ler payload do LLM", "erro", err)
			os.Exit(1)
		}
		sonarPayload, err := os.ReadFile(sonarPayloadPath)
		if err != nil {
			logger.Errorw("Erro ao ler payload do SonarQube", "erro", err)
			os.Exit(1)
		}

		comp, warnings := comparator.NewFromPayloads(llmPayload, sonarPayload, buildNormalizer(cfg), gran)
		for _, w := range warnings {
			logger.Warnw("Payload malformado, seguindo com lista vazia", "erro", w)
		}

		result := comp.Run()

		jsonPath, err := report.WriteJSON(result, cfg.OutputDir)
		if err != nil {
			logger.Errorw("Erro ao gravar resultados em JSON", "erro", err)
			os.Exit(1)
		}
		mdPath, err := report.WriteMarkdown(result, cfg.OutputDir)
		if err != nil {
			logger.Errorw("Erro ao gravar relatório em markdown", "erro", err)
			os.Exit(1)
		}

		logger.Infow("Relatório GQM gerado com sucesso",
			"json", jsonPath,
			"markdown", mdPath,
			"granularidade", string(gran),
		)
	},
}

// buildNormalizer mescla as sobrescritas do arquivo de configuração
// por cima da tabela padrão do estudo.
func buildNormalizer(cfg *config.Config) *category.Normalizer {
	mapping := category.DefaultMapping()
	for raw, cat := range cfg.CategoryOverrides {
		mapping[raw] = model.Category(cat)
	}
	return category.NewNormalizer(mapping)
}

func init() {
	compareCmd.Flags().StringVar(&llmPayloadPath, "llm", "", "Arquivo JSON com o payload do detector LLM")
	compareCmd.Flags().StringVar(&sonarPayloadPath, "sonar", "", "Arquivo JSON com o payload do SonarQube")
	compareCmd.Flags().StringVarP(&granularityFlag, "granularity", "g", "", "Granularidade dos fingerprints (line, file, category)")
	compareCmd.Flags().StringVarP(&outputDirFlag, "out", "o", "", "Diretório de saída dos artefatos")
	_ = compareCmd.MarkFlagRequired("llm")
	_ = compareCmd.MarkFlagRequired("sonar")
	rootCmd.AddCommand(compareCmd)
}
