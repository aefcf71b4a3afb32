// Package generator compiles a suite model into jest-puppeteer source text.
//
// A Generator is safe for concurrent use: every call to Generate works on its
// own run state, including the interactive-mode accumulator returned in Result.
package generator

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/schema"
	"github.com/fjglira/suitegen/internal/target"
)

// Input is everything a single generation run reads. None of it is mutated.
type Input struct {
	Suite            domain.Suite
	Snippets         *domain.SnippetLibrary
	Runner           domain.Runner
	ProjectDirectory string
	OutputDirectory  string
	Env              map[string]string
	Options          domain.Options
}

// Result is the output of one generation run.
type Result struct {
	Source string
	// Interactive lists the ids of commands instrumented with an
	// interactive-mode wait, in encounter order.
	Interactive []string
}

// Generator renders suites with a fixed schema.
type Generator struct {
	schema   *schema.Schema
	log      *logrus.Logger
	denylist map[string]bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// WithInteractiveDenylist replaces the methods that never receive an
// interactive-mode wait.
func WithInteractiveDenylist(methods []string) Option {
	return func(g *Generator) {
		g.denylist = make(map[string]bool, len(methods))
		for _, m := range methods {
			g.denylist[m] = true
		}
	}
}

// New creates a Generator for s.
func New(s *schema.Schema, opts ...Option) (*Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, domain.NewError(domain.StageSchema, "", "invalid schema", err)
	}
	g := &Generator{
		schema: s,
		log:    logrus.StandardLogger(),
	}
	WithInteractiveDenylist(domain.DefaultInteractiveDenylist)(g)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate renders in into source text. Generation is all-or-nothing: on
// error no partial output is returned.
func (g *Generator) Generate(in Input) (*Result, error) {
	r := &run{
		Generator: g,
		in:        in,
		table:     target.Resolve(in.Suite.Targets, snippetTargets(in.Snippets)),
		log: g.log.WithFields(logrus.Fields{
			"run":   uuid.NewString(),
			"suite": in.Suite.Title,
		}),
	}

	res, err := r.suite()
	if err != nil {
		ge, ok := domain.AsGeneratorError(err)
		if !ok {
			ge = domain.NewError(domain.StageGenerate, "", "", err)
		}
		r.log.WithError(err).Warn("TestGenerator.generate failed")
		return nil, ge
	}
	r.log.WithField("interactive", len(res.Interactive)).Debug("suite generated")
	return res, nil
}

func snippetTargets(lib *domain.SnippetLibrary) []domain.Target {
	if lib == nil {
		return nil
	}
	return lib.Targets
}

// run holds the state of a single Generate call.
type run struct {
	*Generator
	in    Input
	table *target.Table
	log   *logrus.Entry
}

// fragment is a rendered piece of source plus the interactive ids it produced.
type fragment struct {
	source      string
	interactive []string
}

// block accumulates fragments in order.
type block struct {
	chunks      []string
	interactive []string
}

func (b *block) add(f fragment) {
	if f.source != "" {
		b.chunks = append(b.chunks, f.source)
	}
	b.interactive = append(b.interactive, f.interactive...)
}

func (b *block) empty() bool {
	return len(b.chunks) == 0
}

func (b *block) join() string {
	return strings.Join(b.chunks, "\n")
}
