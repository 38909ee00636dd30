package scanner

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/config"
)

// RunSonar roda o sonar-scanner sobre o projeto e depois busca as
// issues de code smell na API do servidor. O payload devolvido é o
// JSON cru de api/issues/search.
func RunSonar(cfg *config.Config, projectDir string) ([]byte, error) {
	absPath, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver caminho absoluto: %v", err)
	}

	projectKey := cfg.Sonar.ProjectKey
	if projectKey == "" {
		projectKey = strings.ReplaceAll(filepath.Base(absPath), "/", "_")
	}

	args := []string{
		fmt.Sprintf("-Dsonar.projectKey=%s", projectKey),
		"-Dsonar.sources=.",
		fmt.Sprintf("-Dsonar.host.url=%s", cfg.Sonar.HostURL),
		fmt.Sprintf("-Dsonar.login=%s", cfg.Sonar.Token),
		fmt.Sprintf("-Dsonar.projectBaseDir=%s", absPath),
	}

	cmd := exec.Command("sonar-scanner", args...)
	cmd.Dir = absPath

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("erro ao executar sonar-scanner: %v\nstderr: %s", err, stderr.String())
	}

	// O servidor indexa a análise de forma assíncrona; uma pausa curta
	// evita buscar as issues antes de elas existirem.
	time.Sleep(5 * time.Second)

	return fetchIssues(cfg, projectKey)
}

// fetchIssues consulta api/issues/search filtrando por CODE_SMELL.
func fetchIssues(cfg *config.Config, projectKey string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/api/issues/search?%s",
		strings.TrimRight(cfg.Sonar.HostURL, "/"),
		url.Values{
			"componentKeys": {projectKey},
			"types":         {"CODE_SMELL"},
			"ps":            {"500"},
		}.Encode())

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("montar requisição para o SonarQube: %w", err)
	}
	if cfg.Sonar.Token != "" {
		// Token como usuário de basic auth, senha vazia.
		req.SetBasicAuth(cfg.Sonar.Token, "")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar issues do SonarQube: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("SonarQube respondeu %d: %s", resp.StatusCode, body)
	}

	return io.ReadAll(resp.Body)
}
