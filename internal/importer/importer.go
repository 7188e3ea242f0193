package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pnlfolio/pnlfolio/internal/model"
)

// ErrMalformedInput marks fatal parse failures: a missing date column
// or an unparsable value in any row. The whole run aborts; no partial
// log is ever returned alongside it.
var ErrMalformedInput = errors.New("malformed transaction log")

// Parser converts an exchange transaction-log export into a
// TransactionLog.
type Parser interface {
	Parse(r io.Reader) (*model.TransactionLog, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
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

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		names = append(names, k)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&DeribitParser{})
	return r
}

// ParseFile opens path and parses it with p.
func ParseFile(p Parser, path string) (*model.TransactionLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transaction log: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}
