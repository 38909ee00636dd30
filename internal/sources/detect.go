package sources

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// File é um arquivo de código candidato à análise pelo LLM.
type File struct {
	Path string // caminho relativo à raiz varrida
	Ext  string
}

// DetectSourceFiles caminha o diretório e devolve os arquivos cujas
// extensões estão na lista de código analisável. Arquivos gerados e
// diretórios ocultos são ignorados.
func DetectSourceFiles(root string, extensions []string) ([]File, error) {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}

	var out []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if IsGeneratedFile(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		out = append(out, File{Path: filepath.ToSlash(rel), Ext: filepath.Ext(path)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IsGeneratedFile analisa as primeiras linhas do arquivo em busca de
// marcadores de código gerado. Código que ninguém escreveu fica fora
// da análise do LLM.
func IsGeneratedFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan() && i < 10; i++ {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, "Code generated") ||
			strings.Contains(line, "DO NOT EDIT") ||
			strings.Contains(line, "@generated") {
			return true
		}
	}

	return false
}
