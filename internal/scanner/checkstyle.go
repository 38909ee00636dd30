package scanner

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os/exec"
	"strings"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/adapters"
	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/config"
)

// Saída XML do CheckStyle (java -jar checkstyle.jar -f xml).
type checkstyleAudit struct {
	Files []struct {
		Name   string `xml:"name,attr"`
		Errors []struct {
			Line     int    `xml:"line,attr"`
			Severity string `xml:"severity,attr"`
			Message  string `xml:"message,attr"`
			Source   string `xml:"source,attr"`
		} `xml:"error"`
	} `xml:"file"`
}

// Checks do CheckStyle equivalentes às regras de smell do SonarQube.
// O que não estiver aqui mantém o nome do check e cai em Outros na
// normalização.
var checkstyleRules = map[string]string{
	"MethodLength":           "java:S138",
	"MagicNumber":            "java:S109",
	"ClassFanOutComplexity":  "java:S1200",
	"MethodCount":            "java:S1448",
	"UnusedPrivateMethod":    "java:S1144",
	"UnusedParameter":        "java:S1172",
	"VisibilityModifier":     "java:S1104",
	"IllegalThrows":          "java:S112",
	"RedundantThrows":        "java:S1130",
	"MultipleStringLiterals": "java:S1192",
}

// RunCheckstyle executa o JAR do CheckStyle e converte o audit XML
// para o mesmo formato de issues do SonarQube, de modo que o extrator
// consuma um único formato de analisador estático.
func RunCheckstyle(cfg *config.Config, projectDir string) ([]byte, error) {
	cmd := exec.Command("java", "-jar", cfg.Checkstyle.JarPath,
		"-c", cfg.Checkstyle.ConfigPath,
		"-f", "xml",
		projectDir,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// CheckStyle devolve código != 0 quando encontra violações; só é
	// erro de verdade quando não há XML utilizável na saída.
	if err := cmd.Run(); err != nil && stdout.Len() == 0 {
		return nil, fmt.Errorf("erro ao executar CheckStyle: %v\nstderr: %s", err, stderr.String())
	}

	return ConvertCheckstyleToSonar(stdout.Bytes())
}

// ConvertCheckstyleToSonar transforma o audit XML no payload de issues
// que o extrator do SonarQube entende.
func ConvertCheckstyleToSonar(input []byte) ([]byte, error) {
	var audit checkstyleAudit
	if err := xml.Unmarshal(input, &audit); err != nil {
		return nil, fmt.Errorf("erro ao fazer parse do XML do CheckStyle: %w", err)
	}

	report := adapters.SonarReport{Issues: []adapters.SonarIssue{}}
	for _, file := range audit.Files {
		for _, e := range file.Errors {
			line := e.Line
			report.Issues = append(report.Issues, adapters.SonarIssue{
				Type:      "CODE_SMELL",
				Rule:      checkstyleRule(e.Source),
				Component: fmt.Sprintf("checkstyle:%s", file.Name),
				Message:   e.Message,
				Severity:  strings.ToUpper(e.Severity),
				Line:      &line,
			})
		}
	}

	return json.Marshal(report)
}

// checkstyleRule traduz o source completo do check
// ("com.puppycrawl...MethodLengthCheck") para a regra equivalente.
func checkstyleRule(source string) string {
	parts := strings.Split(source, ".")
	name := strings.TrimSuffix(parts[len(parts)-1], "Check")
	if rule, ok := checkstyleRules[name]; ok {
		return rule
	}
	return name
}
