package model

// Detector identifica a origem de um finding.
type Detector string

const (
	DetectorLLM   Detector = "llm"
	DetectorSonar Detector = "sonarqube"
)

// Category é uma categoria canônica de code smell. Todo rótulo bruto
// (nome livre do LLM ou regra do SonarQube) mapeia para exatamente uma
// categoria; o que não for reconhecido cai em CategoryOutros.
type Category string

const (
	CategoryLongMethod        Category = "Long Method"
	CategoryGodClass          Category = "God Class"
	CategoryDuplicateCode     Category = "Duplicate Code"
	CategoryMagicNumbers      Category = "Magic Numbers"
	CategoryFeatureEnvy       Category = "Feature Envy"
	CategoryDataClass         Category = "Data Class"
	CategoryExceptionHandling Category = "Exception Handling"
	CategoryOutros            Category = "Outros"
)

// Categories retorna as categorias na ordem usada pelo relatório.
func Categories() []Category {
	return []Category{
		CategoryLongMethod,
		CategoryGodClass,
		CategoryDuplicateCode,
		CategoryFeatureEnvy,
		CategoryDataClass,
		CategoryMagicNumbers,
		CategoryExceptionHandling,
		CategoryOutros,
	}
}

// Finding é um code smell normalizado, independente do detector que o
// produziu. Imutável depois da extração.
type Finding struct {
	Detector      Detector `json:"detector"`
	Category      Category `json:"category"`
	OriginalLabel string   `json:"original_label"` // rótulo bruto (nome do smell ou regra)
	File          string   `json:"file"`           // vazio = sem localização
	Lines         []int    `json:"lines"`          // intervalo expandido, pode ser vazio
	Description   string   `json:"description"`
	Confidence    string   `json:"confidence"` // alto/médio/baixo (LLM)
	Severity      string   `json:"severity"`   // MAJOR/MINOR/... (SonarQube)
}

// HasLocation informa se o finding carrega arquivo e linhas.
func (f Finding) HasLocation() bool {
	return f.File != "" && len(f.Lines) > 0
}
