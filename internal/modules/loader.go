// Package modules loads the program trees handed over by the parser.
//
// The parser serialises the statement tree as YAML (JSON is accepted as the
// YAML subset it is). Loader decodes that tree into an *ast.Program.
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/miniscript/internal/ast"
	"github.com/funvibe/miniscript/internal/config"
)

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Loader loads program trees from disk and caches them by absolute path.
type Loader struct {
	LoadedPrograms map[string]*ast.Program
}

func NewLoader() *Loader {
	return &Loader{
		LoadedPrograms: make(map[string]*ast.Program),
	}
}

// Load reads and decodes the program tree at path.
func (l *Loader) Load(path string) (*ast.Program, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if prog, ok := l.LoadedPrograms[absPath]; ok {
		return prog, nil
	}
	if !isSourceFile(absPath) {
		return nil, fmt.Errorf("%s: not a program tree (want %s)", path, strings.Join(config.SourceFileExtensions, ", "))
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	prog, err := Decode(data, path)
	if err != nil {
		return nil, err
	}
	l.LoadedPrograms[absPath] = prog
	return prog, nil
}
