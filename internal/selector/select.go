package selector

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Sena-ops/reducerguard/internal/logging"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidRoot indica raiz inexistente, ilegível ou que não é diretório.
var ErrInvalidRoot = errors.New("diretório raiz inválido")

var ErrInvalidPattern = errors.New("padrão inválido")

// Select percorre root e devolve os arquivos que casam com include,
// pulando diretórios cujo nome casa com exclude. A ordem é lexicográfica
// pelo caminho relativo. Nenhum arquivo encontrado não é erro.
func Select(root string, include, exclude []string) ([]SourceFile, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}
	// WalkDir não segue um link simbólico na raiz: resolve antes de percorrer
	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}

	var files []SourceFile
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// subdiretório ilegível: segue o scan
			logging.Logger.Warnw("ignorando caminho ilegível", "caminho", path, "erro", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && excluded(d.Name(), exclude) {
				logging.Logger.Debugw("diretório excluído", "caminho", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		if matches(rel, include) {
			files = append(files, SourceFile{Path: path, Rel: rel})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	logging.Logger.Debugw("arquivos selecionados", "raiz", root, "total", len(files))
	return files, nil
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s não é um diretório", ErrInvalidRoot, root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	return nil
}

// matches testa o nome base para padrões sem "/" e o caminho relativo para os demais.
func matches(rel string, patterns []string) bool {
	base := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		base = rel[i+1:]
	}
	for _, p := range patterns {
		target := base
		if strings.Contains(p, "/") {
			target = rel
		}
		if ok, _ := doublestar.Match(p, target); ok {
			return true
		}
	}
	return false
}

func excluded(name string, exclude []string) bool {
	for _, p := range exclude {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
