package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Metric é um float64 que sobrevive à serialização JSON mesmo quando
// vale +Inf (encoding/json rejeita infinitos). O único campo que pode
// chegar a +Inf é a proporção entre os totais dos detectores.
type Metric float64

func (m Metric) MarshalJSON() ([]byte, error) {
	f := float64(m)
	if math.IsInf(f, 1) {
		return []byte(`"Infinity"`), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "Infinity" {
		*m = Metric(math.Inf(1))
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("métrica inválida %q: %w", s, err)
	}
	*m = Metric(f)
	return nil
}

// ComparisonResult agrega as métricas das três perguntas do GQM.
// Montado uma única vez por execução do comparador e imutável depois.
type ComparisonResult struct {
	Pergunta1 Pergunta1                     `json:"pergunta1"`
	Pergunta2 Pergunta2                     `json:"pergunta2"`
	Pergunta3 map[Category]CategoriaMetrica `json:"pergunta3"`
}

// Pergunta1: qual abordagem detecta mais code smells clássicos?
type Pergunta1 struct {
	TotalSmells  TotalSmells  `json:"m1_total_smells"`
	Similaridade Similaridade `json:"m2_similaridade"`
	Divergencia  Divergencia  `json:"m3_divergencia"`
}

type TotalSmells struct {
	LLM   int `json:"llm"`
	Sonar int `json:"sonarqube"`
	// Proporção llm/sonar; +Inf quando o SonarQube não reporta nada.
	ProporcaoLLMSonar Metric `json:"proporcao_llm_sonar"`
}

type Similaridade struct {
	SmellsComuns      int     `json:"smells_comuns"`
	TotalSmellsUnicos int     `json:"total_smells_unicos"`
	TaxaSimilaridade  float64 `json:"taxa_similaridade"`
}

type Divergencia struct {
	LLMExclusivos        int     `json:"llm_exclusivos"`
	SonarExclusivos      int     `json:"sonar_exclusivos"`
	TaxaDivergenciaLLM   float64 `json:"taxa_divergencia_llm"`
	TaxaDivergenciaSonar float64 `json:"taxa_divergencia_sonar"`
}

// Pergunta2: qual abordagem apresenta maior amplitude de cobertura?
type Pergunta2 struct {
	ArquivosRelevantes ArquivosRelevantes `json:"m1_arquivos_relevantes"`
	Cobertura          Cobertura          `json:"m2_cobertura"`
	MediaPorArquivo    MediaPorArquivo    `json:"m3_media_por_arquivo"`
}

type ArquivosRelevantes struct {
	Total    int      `json:"total"`
	Arquivos []string `json:"arquivos"` // ordenados para saída determinística
}

type Cobertura struct {
	LLMArquivos        int     `json:"llm_arquivos"`
	SonarArquivos      int     `json:"sonar_arquivos"`
	PercCoberturaLLM   float64 `json:"perc_cobertura_llm"`
	PercCoberturaSonar float64 `json:"perc_cobertura_sonar"`
}

type MediaPorArquivo struct {
	MediaSmellsLLM       float64             `json:"media_smells_llm"`
	MediaSmellsSonar     float64             `json:"media_smells_sonar"`
	MediaCategoriasLLM   float64             `json:"media_categorias_llm"`
	MediaCategoriasSonar float64             `json:"media_categorias_sonar"`
	DetalhesLLM          map[string][]string `json:"detalhes_llm"`
	DetalhesSonar        map[string][]string `json:"detalhes_sonar"`
}

// Pergunta3: desempenho e concordância por categoria de code smell.
type CategoriaMetrica struct {
	PrecisionRecallF1 PrecisionRecallF1 `json:"m1_precision_recall_f1"`
	Kappa             float64           `json:"m2_kappa"`
	Exclusividade     Exclusividade     `json:"m3_exclusividade"`
	Overlap           Overlap           `json:"m4_overlap"`
}

type PrecisionRecallF1 struct {
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
}

type Exclusividade struct {
	ExclusivoLLM   int `json:"exclusivo_llm"`
	ExclusivoSonar int `json:"exclusivo_sonar"`
	Total          int `json:"total"`
}

// Faixa de sobreposição de uma categoria, calculada sobre as contagens
// brutas de cada detector: min/max*100.
type Overlap struct {
	ContagemLLM   int     `json:"contagem_llm"`
	ContagemSonar int     `json:"contagem_sonar"`
	Razao         float64 `json:"razao"`
	Faixa         string  `json:"faixa"` // alta (>=80), baixa (<=20) ou media
}

const (
	FaixaAlta  = "alta"
	FaixaMedia = "media"
	FaixaBaixa = "baixa"
)
