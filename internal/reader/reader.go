// Package reader decodes bank-exported statement files into normalized
// transactions. Each bank dialect gets its own Reader implementation;
// the aggregation engine only sees the common interface, so adding a
// bank means adding a Reader and registering it here.
package reader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saldo-dev/saldo/internal/classify"
	"github.com/saldo-dev/saldo/internal/model"
)

// Source supplies one bank statement as a byte stream. Where the bytes
// come from (file, bundled resource) is the caller's concern.
type Source func() (io.ReadCloser, error)

// FileSource returns a Source backed by a file on disk.
func FileSource(path string) Source {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// Reader decodes one bank's statement dialect.
type Reader interface {
	// Read parses the whole statement. Row-level problems degrade to
	// safe defaults; only an unreadable stream is an error.
	Read() ([]model.Transaction, error)
	// Bank identifies the dialect.
	Bank() model.Bank
}

// Factory builds a Reader for one statement source.
type Factory func(src Source, cls *classify.Classifier, log zerolog.Logger) Reader

// Registry holds named reader factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory. Panics on duplicate name.
func (r *Registry) Register(name string, f Factory) {
	key := strings.ToLower(name)
	if _, ok := r.factories[key]; ok {
		panic("duplicate reader dialect: " + key)
	}
	r.factories[key] = f
}

// Get returns the factory for a dialect name, or nil.
func (r *Registry) Get(name string) Factory {
	return r.factories[strings.ToLower(name)]
}

// DefaultRegistry returns a registry with all built-in dialects.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("mbank", func(src Source, cls *classify.Classifier, log zerolog.Logger) Reader {
		return NewMBank(src, cls, log)
	})
	r.Register("pkosa", func(src Source, cls *classify.Classifier, log zerolog.Logger) Reader {
		return NewPkoSA(src, cls, log)
	})
	return r
}

// FileInfo describes a statement file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns CSV files in dir, non-recursively.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
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
