package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/config"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "smellstudy",
	Short: "Estudo GQM - Detecção de Code Smells: LLM vs SonarQube",
}

var (
	configPath string
	debugMode  bool

	logger *zap.SugaredLogger
)

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "smellstudy.yaml", "Caminho do arquivo de configuração")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Habilita logs em nível debug")
}

// setup inicializa o logger global e carrega a configuração; falha de
// configuração é fatal antes de qualquer análise começar.
func setup() *config.Config {
	logging.InitLogger(debugMode)
	logger = logging.Logger

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println("Erro ao carregar configuração:", err)
		os.Exit(1)
	}
	return cfg
}
