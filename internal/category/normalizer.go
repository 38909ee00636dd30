package category

import "github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"

// Mapping associa rótulos brutos (nomes livres do LLM ou regras do
// SonarQube) a categorias canônicas.
type Mapping map[string]model.Category

// DefaultMapping retorna a tabela curada do estudo. Cobre os nomes de
// smells que o LLM costuma devolver e as regras Java do SonarQube que
// correspondem aos smells clássicos.
func DefaultMapping() Mapping {
	return Mapping{
		// LLM -> categorias padronizadas
		"Long Method":        model.CategoryLongMethod,
		"God Class":          model.CategoryGodClass,
		"God Object":         model.CategoryGodClass,
		"Large Class":        model.CategoryGodClass,
		"Duplicate Code":     model.CategoryDuplicateCode,
		"Duplicated Logic":   model.CategoryDuplicateCode,
		"Magic Numbers":      model.CategoryMagicNumbers,
		"Feature Envy":       model.CategoryFeatureEnvy,
		"Data Class":         model.CategoryDataClass,
		"Exception Handling": model.CategoryExceptionHandling,

		// SonarQube -> categorias padronizadas
		"java:S1192": model.CategoryDuplicateCode,     // literais string duplicados
		"java:S112":  model.CategoryExceptionHandling, // exceções genéricas lançadas
		"java:S1130": model.CategoryExceptionHandling, // throws desnecessários
		"java:S138":  model.CategoryLongMethod,        // métodos com linhas demais
		"java:S1448": model.CategoryGodClass,          // classes com métodos demais
		"java:S1200": model.CategoryGodClass,          // classes complexas demais
		"java:S109":  model.CategoryMagicNumbers,      // números mágicos
		"java:S3400": model.CategoryMagicNumbers,      // métodos que retornam constantes
		"java:S1144": model.CategoryMagicNumbers,      // métodos privados sem uso
		"java:S1172": model.CategoryFeatureEnvy,       // parâmetros sem uso
		"java:S1104": model.CategoryDataClass,         // visibilidade de campos
		"java:S1450": model.CategoryDataClass,         // membros privados expostos
	}
}

// Normalizer resolve rótulos brutos contra uma tabela imutável. A
// tabela é copiada na construção, então mutações no Mapping de origem
// não vazam para dentro do normalizador.
type Normalizer struct {
	mapping Mapping
}

func NewNormalizer(m Mapping) *Normalizer {
	copied := make(Mapping, len(m))
	for k, v := range m {
		copied[k] = v
	}
	return &Normalizer{mapping: copied}
}

// Normalize é total: qualquer string é aceita e rótulos desconhecidos
// caem em Outros, nunca são descartados.
func (n *Normalizer) Normalize(raw string) model.Category {
	if cat, ok := n.mapping[raw]; ok {
		return cat
	}
	return model.CategoryOutros
}
