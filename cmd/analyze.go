package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/scanner"
)

var whichDetector string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [caminho]",
	Short: "Executa um detector estático sobre o projeto e salva o payload bruto",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := setup()
		path := args[0]

		logger.Infof("Executando detector: %s...", whichDetector)

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			logger.Errorw("Erro ao criar diretório de saída", "erro", err)
			os.Exit(1)
		}

		output, outputPath, err := scanner.Execute(whichDetector, cfg, path)
		if err != nil {
			logger.Errorw("Erro ao executar detector", "erro", err)
			os.Exit(1)
		}

		if err := os.WriteFile(outputPath, output, 0o644); err != nil {
			logger.Errorw("Erro ao salvar payload", "erro", err)
			os.Exit(1)
		}
		logger.Infow("Payload salvo com sucesso", "detector", whichDetector, "arquivo", outputPath)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&whichDetector, "with", "w", "sonar", "Detector a executar (sonar, checkstyle)")
	rootCmd.AddCommand(analyzeCmd)
}
