package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fjglira/suitegen/internal/domain"
)

// reference inlines the snippet test ref. A dangling reference renders as "".
func (r *run) reference(ref string, variables map[string]string) (fragment, error) {
	test, ok := r.in.Snippets.Lookup(ref)
	if !ok {
		r.log.WithField("ref", ref).Debug("snippet not found, reference skipped")
		return fragment{}, nil
	}

	var body block
	for _, cmd := range test.Commands {
		f, err := r.command(cmd, true)
		if err != nil {
			return fragment{}, err
		}
		body.add(f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "      // SNIPPET %s: START\n", test.Title)
	if len(variables) > 0 {
		env, err := marshalVariables(variables)
		if err != nil {
			return fragment{}, domain.NewError(domain.StageCommand, "", fmt.Sprintf("snippet %q variables", ref), err)
		}
		fmt.Fprintf(&b, "      Object.assign( ENV, %s );\n", env)
	}
	b.WriteString(body.join())
	fmt.Fprintf(&b, "\n      // SNIPPET %s: END\n", test.Title)

	return fragment{source: b.String(), interactive: body.interactive}, nil
}

// marshalVariables renders variables as a JSON object literal with sorted keys.
func marshalVariables(variables map[string]string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(variables); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
