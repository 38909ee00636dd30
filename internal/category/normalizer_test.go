package category

import (
	"testing"

	"github.com/msigor/code-smells-sonarqube-vs-llm/internal/model"
)

func TestNormalize(t *testing.T) {
	norm := NewNormalizer(DefaultMapping())

	tests := []struct {
		name     string
		raw      string
		expected model.Category
	}{
		{"smell_llm", "Long Method", model.CategoryLongMethod},
		{"sinonimo_llm", "God Object", model.CategoryGodClass},
		{"regra_sonar", "java:S138", model.CategoryLongMethod},
		{"regra_sonar_data_class", "java:S1104", model.CategoryDataClass},
		{"rotulo_desconhecido", "Spaghetti Code", model.CategoryOutros},
		{"string_vazia", "", model.CategoryOutros},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := norm.Normalize(tt.raw)
			if result != tt.expected {
				t.Errorf("esperado %v, obtido %v", tt.expected, result)
			}
			// Determinismo: duas chamadas, mesmo resultado.
			if again := norm.Normalize(tt.raw); again != result {
				t.Errorf("normalização não determinística: %v depois %v", result, again)
			}
		})
	}
}

func TestNormalizerCopiesMapping(t *testing.T) {
	mapping := Mapping{"Custom Smell": model.CategoryLongMethod}
	norm := NewNormalizer(mapping)

	// Mutação no mapa de origem não pode vazar para o normalizador.
	mapping["Custom Smell"] = model.CategoryGodClass

	if got := norm.Normalize("Custom Smell"); got != model.CategoryLongMethod {
		t.Errorf("esperado %v, obtido %v", model.CategoryLongMethod, got)
	}
}

func TestNormalizerWithOverrides(t *testing.T) {
	mapping := DefaultMapping()
	mapping["Spaghetti Code"] = model.CategoryLongMethod
	norm := NewNormalizer(mapping)

	if got := norm.Normalize("Spaghetti Code"); got != model.CategoryLongMethod {
		t.Errorf("esperado %v, obtido %v", model.CategoryLongMethod, got)
	}
	// A tabela padrão continua valendo.
	if got := norm.Normalize("java:S1192"); got != model.CategoryDuplicateCode {
		t.Errorf("esperado %v, obtido %v", model.CategoryDuplicateCode, got)
	}
}
