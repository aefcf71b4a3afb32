// Package template provides the default text/template backed schema.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/schema"
)

//go:embed templates/jest/*.tmpl
var embeddedTemplates embed.FS

const embeddedDir = "templates/jest"

// Composer template names.
const (
	QueryTemplate = "query"
	TestTemplate  = "test"
	GroupTemplate = "group"
	SuiteTemplate = "suite"
)

// Engine holds parsed templates keyed by file name without extension:
// "page.<method>", "element.<method>" and the four composer templates.
type Engine struct {
	templates   map[string]*template.Template
	templateDir string
}

// NewEngine loads the embedded jest templates, then overrides them with any
// .tmpl files found in templateDir. An empty or missing templateDir keeps
// the embedded set.
func NewEngine(templateDir string) (*Engine, error) {
	engine := &Engine{
		templates:   make(map[string]*template.Template),
		templateDir: templateDir,
	}

	sub, err := fs.Sub(embeddedTemplates, embeddedDir)
	if err != nil {
		return nil, domain.NewError(domain.StageSchema, embeddedDir, "failed to open embedded templates", err)
	}
	if err := engine.loadTemplates(sub, "embedded:"); err != nil {
		return nil, err
	}

	if templateDir != "" {
		if info, statErr := os.Stat(templateDir); statErr == nil && info.IsDir() {
			if err := engine.loadTemplates(os.DirFS(templateDir), templateDir); err != nil {
				return nil, err
			}
		}
	}

	return engine, nil
}

// loadTemplates parses all .tmpl files at the root of fsys.
func (e *Engine) loadTemplates(fsys fs.FS, origin string) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return domain.NewError(domain.StageSchema, origin, "failed to read template directory", err)
	}

	funcMap := CustomFuncMap()

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		path := filepath.Join(origin, entry.Name())
		content, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return domain.NewError(domain.StageSchema, path, "failed to read template file", err)
		}

		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(string(content))
		if err != nil {
			return domain.NewError(domain.StageSchema, path, "failed to parse template", err)
		}

		e.templates[name] = tmpl
	}

	return nil
}

// ListTemplates returns the names of all loaded templates, sorted.
func (e *Engine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema registers every "page.*" and "element.*" template as a method
// renderer and uses the composer templates for structure.
func (e *Engine) Schema() (*schema.Schema, error) {
	for _, name := range []string{QueryTemplate, TestTemplate, GroupTemplate, SuiteTemplate} {
		if _, ok := e.templates[name]; !ok {
			return nil, domain.NewError(domain.StageSchema, e.templateDir,
				fmt.Sprintf("composer template %q not found (available: %s)", name, strings.Join(e.ListTemplates(), ", ")), nil)
		}
	}

	reg := schema.NewRegistry()
	for _, name := range e.ListTemplates() {
		kind, method, ok := strings.Cut(name, ".")
		if !ok {
			continue
		}
		if err := reg.Register(schema.Kind(kind), method, methodRenderer{e.templates[name]}); err != nil {
			return nil, domain.NewError(domain.StageSchema, e.templateDir, "invalid method template "+name, err)
		}
	}

	return &schema.Schema{Methods: reg, Composer: composer{e}}, nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

type methodRenderer struct {
	tmpl *template.Template
}

func (m methodRenderer) Render(p schema.MethodParams) (string, error) {
	return execute(m.tmpl, p)
}

type composer struct {
	e *Engine
}

func (c composer) Query(d schema.QueryData) (string, error) {
	return execute(c.e.templates[QueryTemplate], d)
}

func (c composer) Test(d schema.TestData) (string, error) {
	return execute(c.e.templates[TestTemplate], d)
}

func (c composer) Group(d schema.GroupData) (string, error) {
	return execute(c.e.templates[GroupTemplate], d)
}

func (c composer) Suite(d schema.SuiteData) (string, error) {
	out, err := execute(c.e.templates[SuiteTemplate], d)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}
