// Package target merges the suite and snippet target tables.
package target

import (
	"strings"

	"github.com/fjglira/suitegen/internal/domain"
)

// Table is the merged view of suite and snippet targets.
type Table struct {
	selectors    map[string]string
	declarations []domain.Target
}

// Resolve merges suite targets over snippet targets. Suite bindings win for a
// shared name; snippet-only bindings are kept so inlined snippet commands
// still find their selectors.
func Resolve(suite, snippets []domain.Target) *Table {
	t := &Table{selectors: make(map[string]string, len(suite)+len(snippets))}

	for _, entry := range snippets {
		t.selectors[entry.Name] = entry.Selector
	}
	declared := make(map[string]bool, len(suite))
	for _, entry := range suite {
		t.selectors[entry.Name] = entry.Selector
		declared[entry.Name] = true
	}

	// Snippet-only targets come first so suite declarations read as overrides.
	for _, entry := range snippets {
		if !declared[entry.Name] {
			t.declare(entry)
		}
	}
	for _, entry := range suite {
		t.declare(entry)
	}
	return t
}

func (t *Table) declare(entry domain.Target) {
	if entry.Name == "" || entry.Selector == "" {
		return
	}
	t.declarations = append(t.declarations, entry)
}

// Selector returns the selector bound to name, or "" when unbound.
func (t *Table) Selector(name string) string {
	return t.selectors[name]
}

// Declarations returns the targets that make it into the declaration block, in order.
func (t *Table) Declarations() []domain.Target {
	out := make([]domain.Target, len(t.declarations))
	copy(out, t.declarations)
	return out
}

// Render joins query(target) over Declarations with newlines.
func (t *Table) Render(query func(domain.Target) (string, error)) (string, error) {
	chunks := make([]string, 0, len(t.declarations))
	for _, entry := range t.declarations {
		chunk, err := query(entry)
		if err != nil {
			return "", err
		}
		chunks = append(chunks, chunk)
	}
	return strings.Join(chunks, "\n"), nil
}
