package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fjglira/suitegen/internal/domain"
)

// Kind selects the renderer table a command is dispatched to.
type Kind string

const (
	KindPage    Kind = "page"
	KindElement Kind = "element"
)

// KindOf returns KindPage when target names the page itself, KindElement otherwise.
func KindOf(target string) Kind {
	if target == domain.PageTarget {
		return KindPage
	}
	return KindElement
}

func (k Kind) valid() bool {
	return k == KindPage || k == KindElement
}

// MethodParams is the input handed to a method renderer. ID and TestID exist
// so that renderers can emit debug-identifiable code.
type MethodParams struct {
	Target   string
	Assert   *domain.Assert
	Params   map[string]any
	Selector string
	Method   string
	ID       string
	TestID   string
}

// Renderer turns one command into a source fragment.
type Renderer interface {
	Render(p MethodParams) (string, error)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(p MethodParams) (string, error)

func (f RendererFunc) Render(p MethodParams) (string, error) {
	return f(p)
}

// Registry maps (kind, method) to a renderer. Registrations are validated
// eagerly so that dispatch never discovers a malformed entry.
type Registry struct {
	mu        sync.RWMutex
	renderers map[Kind]map[string]Renderer
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: map[Kind]map[string]Renderer{
			KindPage:    {},
			KindElement: {},
		},
	}
}

// Register adds r as the renderer for method on kind.
func (r *Registry) Register(kind Kind, method string, renderer Renderer) error {
	if !kind.valid() {
		return fmt.Errorf("unknown target kind %q", kind)
	}
	if method == "" {
		return fmt.Errorf("method name must not be empty for kind %q", kind)
	}
	if renderer == nil {
		return fmt.Errorf("renderer for %s.%s must not be nil", kind, method)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[kind][method]; exists {
		return fmt.Errorf("renderer for %s.%s already registered", kind, method)
	}
	r.renderers[kind][method] = renderer
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind Kind, method string, renderer Renderer) {
	if err := r.Register(kind, method, renderer); err != nil {
		panic(err)
	}
}

// Lookup returns the renderer registered for method on kind.
func (r *Registry) Lookup(kind Kind, method string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[kind][method]
	return renderer, ok
}

// Methods lists the registered method names for kind, sorted.
func (r *Registry) Methods(kind Kind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.renderers[kind]))
	for name := range r.renderers[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
