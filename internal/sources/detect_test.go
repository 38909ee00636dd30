package sources

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("erro ao criar diretório: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("erro ao escrever arquivo: %v", err)
	}
	return path
}

func TestDetectSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "Pub.java", "public class Pub {}\n")
	writeTempFile(t, root, "src/app.py", "def main():\n    pass\n")
	writeTempFile(t, root, "README.md", "# docs\n")
	writeTempFile(t, root, ".git/config", "[core]\n")
	writeTempFile(t, root, "gerado.go", "// Code generated by protoc. DO NOT EDIT.\npackage gerado\n")

	files, err := DetectSourceFiles(root, []string{".java", ".py", ".go"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	got := make(map[string]bool, len(files))
	for _, f := range files {
		got[f.Path] = true
	}
	for _, want := range []string{"Pub.java", "src/app.py"} {
		if !got[want] {
			t.Errorf("arquivo esperado ausente: %s (obtido %v)", want, files)
		}
	}
	for _, unwanted := range []string{"README.md", ".git/config", "gerado.go"} {
		if got[unwanted] {
			t.Errorf("arquivo indevido na lista: %s", unwanted)
		}
	}
}

func TestDetectSourceFilesExtensaoCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "Main.JAVA", "public class Main {}\n")

	files, err := DetectSourceFiles(root, []string{".java"})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("extensão maiúscula deveria ser aceita, obtido %v", files)
	}
}

func TestIsGeneratedFile(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"gerado_protoc.go", "// Code generated by protoc-gen-go. DO NOT EDIT.\npackage x\n", true},
		{"gerado_marcador.py", "# @generated\nprint()\n", true},
		{"escrito_a_mao.java", "public class Pub {\n}\n", false},
		{"marcador_tardio.go", "package x\n\n\n\n\n\n\n\n\n\n\n// DO NOT EDIT no fim não conta\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, root, tt.name, tt.content)
			if got := IsGeneratedFile(path); got != tt.expected {
				t.Errorf("esperado %v, obtido %v", tt.expected, got)
			}
		})
	}
}

func TestIsGeneratedFileInexistente(t *testing.T) {
	if IsGeneratedFile(filepath.Join(t.TempDir(), "nao_existe.go")) {
		t.Error("arquivo inexistente não deveria contar como gerado")
	}
}
