// Package importer converts external statement files into transactions
// and exports the log back out. Malformed rows are skipped, never fatal;
// duplicate suppression is this package's job, not the ledger's.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/moneytrail-dev/moneytrail/internal/model"
	"github.com/moneytrail-dev/moneytrail/internal/sms"
)

// Parser converts a statement file into transactions. Skipped reports
// how many rows were dropped for missing mandatory fields.
type Parser interface {
	Parse(r io.Reader) (txns []model.Transaction, skipped int, err error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a statement file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&StatementParser{})
	return r
}

// Dedupe filters out transactions whose fingerprint already appears in
// existing, and collapses fingerprint collisions within the batch
// itself. Returns the kept transactions and the number dropped.
func Dedupe(batch, existing []model.Transaction) ([]model.Transaction, int) {
	seen := make(map[string]bool, len(existing))
	for i := range existing {
		seen[sms.Fingerprint(&existing[i])] = true
	}

	kept := make([]model.Transaction, 0, len(batch))
	dropped := 0
	for i := range batch {
		fp := sms.Fingerprint(&batch[i])
		if seen[fp] {
			dropped++
			continue
		}
		seen[fp] = true
		kept = append(kept, batch[i])
	}
	return kept, dropped
}

// importDir is the workspace subdirectory scanned for statement files.
const importDir = "import"

// processedDir receives statement files after a successful import.
const processedDir = "import/processed"

// Scan returns CSV files in <workspace>/import/.
func Scan(workspace string) ([]FileInfo, error) {
	dir := filepath.Join(workspace, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
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

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(workspace, fileName string) error {
	src := filepath.Join(workspace, importDir, fileName)
	dstDir := filepath.Join(workspace, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
