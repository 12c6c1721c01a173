// Package loader turns source files into RawTables. Formats are pluggable
// through a registry keyed by file extension; what a table means is decided
// later by the schema resolver, never here.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Parser converts one source file into a RawTable.
type Parser interface {
	Parse(r io.Reader, source string) (model.RawTable, error)
	Extensions() []string
}

// Registry holds parsers by file extension.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a loadable file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser for each of its extensions. Panics on duplicate.
func (r *Registry) Register(p Parser) {
	for _, ext := range p.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.parsers[key]; ok {
			panic("duplicate parser for extension: " + key)
		}
		r.parsers[key] = p
	}
}

// Get returns the parser for a file name's extension, or nil.
func (r *Registry) Get(name string) Parser {
	return r.parsers[strings.ToLower(filepath.Ext(name))]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&XLSXParser{})
	r.Register(&XLSParser{})
	return r
}

// importDir is the subdirectory scanned for source files.
const importDir = "import"

// processedDir receives files after a successful run.
const processedDir = "import/processed"

// Scan returns loadable files in <root>/import/, in name order.
func (r *Registry) Scan(root string) ([]FileInfo, error) {
	dir := filepath.Join(root, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || r.Get(e.Name()) == nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Load parses one file into a RawTable using the extension's parser.
func (r *Registry) Load(path string) (model.RawTable, error) {
	p := r.Get(path)
	if p == nil {
		return model.RawTable{}, fmt.Errorf("no parser for %s", filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return p.Parse(f, filepath.Base(path))
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(root, fileName string) error {
	src := filepath.Join(root, importDir, fileName)
	dstDir := filepath.Join(root, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}
	if err := os.Rename(src, filepath.Join(dstDir, fileName)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// buildTable assembles a RawTable from sheet-shaped data: first row is the
// header, short rows are padded, long rows truncated, blank rows skipped.
func buildTable(rows [][]string, source string) (model.RawTable, error) {
	if len(rows) == 0 {
		return model.RawTable{}, fmt.Errorf("%s: no header row", source)
	}

	columns := make([]string, len(rows[0]))
	for i, c := range rows[0] {
		columns[i] = strings.TrimSpace(c)
	}

	table := model.RawTable{Source: source, Columns: columns}
	for _, rec := range rows[1:] {
		if blankRow(rec) {
			continue
		}
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func blankRow(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
