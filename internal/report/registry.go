package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Renderer writes one student's career plan in a specific document format.
type Renderer interface {
	Render(w io.Writer, rec dataset.StudentRecord) error
	ContentType() string
	Ext() string
}

type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// DefaultRegistry knows the pdf and xlsx renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FormatPDF, PDFRenderer{})
	r.Register(FormatXLSX, XLSXRenderer{})
	return r
}

func (r *Registry) Register(name string, rd Renderer) {
	name = strings.ToLower(strings.TrimSpace(name))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[name] = rd
}

func (r *Registry) Get(name string) (Renderer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = FormatPDF
	}
	r.mu.RLock()
	rd, ok := r.renderers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return rd, nil
}

func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.renderers))
	for k := range r.renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
