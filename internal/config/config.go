package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config reúne as configurações do estudo. O arquivo é opcional:
// na ausência dele valem os defaults.
type Config struct {
	// Diretório onde os artefatos da comparação são gravados.
	OutputDir string `yaml:"output_dir"`
	// Granularidade dos fingerprints: line, file ou category.
	Granularity string `yaml:"granularity"`

	Sonar      SonarConfig      `yaml:"sonarqube"`
	Checkstyle CheckstyleConfig `yaml:"checkstyle"`
	LLM        LLMConfig        `yaml:"llm"`

	// Sobrescritas da tabela de normalização (rótulo bruto -> categoria
	// canônica). Mescladas por cima da tabela padrão.
	CategoryOverrides map[string]string `yaml:"category_overrides"`
}

type SonarConfig struct {
	HostURL    string `yaml:"host_url"`
	Token      string `yaml:"token"`
	ProjectKey string `yaml:"project_key"`
}

type CheckstyleConfig struct {
	JarPath    string `yaml:"jar_path"`
	ConfigPath string `yaml:"config_path"`
}

type LLMConfig struct {
	Model string `yaml:"model"`
	// Nome da variável de ambiente com a chave da API (a chave em si
	// nunca vai para o arquivo).
	APIKeyEnv string `yaml:"api_key_env"`
	// Tamanho máximo de um chunk de código enviado ao modelo, em runas.
	MaxChunkSize int `yaml:"max_chunk_size"`
	// Extensões de arquivo consideradas código analisável.
	CodeExtensions []string `yaml:"code_extensions"`
}

func Default() *Config {
	return &Config{
		OutputDir:   "./results",
		Granularity: "line",
		Sonar: SonarConfig{
			HostURL: "http://localhost:9000",
		},
		Checkstyle: CheckstyleConfig{
			JarPath:    "config/checkstyle.jar",
			ConfigPath: "config/checkstyle-config.xml",
		},
		LLM: LLMConfig{
			Model:        "gemini-1.5-flash",
			APIKeyEnv:    "GEMINI_API_KEY",
			MaxChunkSize: 120000,
			CodeExtensions: []string{
				".py", ".java", ".js", ".ts", ".go", ".cpp", ".c",
				".cs", ".kt", ".swift", ".rb", ".php",
			},
		},
	}
}

// Load lê o arquivo YAML indicado. Arquivo inexistente devolve os
// defaults sem erro; YAML inválido é erro de verdade.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ler configuração: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse da configuração: %w", err)
	}
	return cfg, nil
}

// APIKey resolve a chave da API do LLM a partir do ambiente.
func (c *Config) APIKey() string {
	return os.Getenv(c.LLM.APIKeyEnv)
}
