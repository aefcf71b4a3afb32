package generator

import (
	"fmt"

	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/schema"
)

// test renders one test. Tests without enabled commands contribute nothing.
func (r *run) test(t domain.Test) (fragment, error) {
	commands := t.EnabledCommands()
	if len(commands) == 0 {
		return fragment{}, nil
	}

	var body block
	for _, cmd := range commands {
		f, err := r.command(cmd, false)
		if err != nil {
			return fragment{}, err
		}
		body.add(f)
	}

	src, err := r.schema.Composer.Test(schema.TestData{
		Title: fmt.Sprintf("%s {%s}", t.Title, t.ID),
		Body:  body.join(),
	})
	if err != nil {
		return fragment{}, domain.NewError(domain.StageGenerate, "", fmt.Sprintf("failed to compose test %q", t.ID), err)
	}
	return fragment{source: src, interactive: body.interactive}, nil
}

// group renders one group. Groups without a non-empty test contribute nothing.
func (r *run) group(g domain.Group) (fragment, error) {
	var body block
	for _, t := range g.Tests {
		if t.Disabled {
			continue
		}
		f, err := r.test(t)
		if err != nil {
			return fragment{}, err
		}
		body.add(f)
	}
	if body.empty() {
		return fragment{}, nil
	}

	src, err := r.schema.Composer.Group(schema.GroupData{
		Title: g.Title,
		Body:  body.join(),
	})
	if err != nil {
		return fragment{}, domain.NewError(domain.StageGenerate, "", fmt.Sprintf("failed to compose group %q", g.ID), err)
	}
	return fragment{source: src, interactive: body.interactive}, nil
}

func (r *run) suite() (*Result, error) {
	targets, err := r.table.Render(func(t domain.Target) (string, error) {
		return r.schema.Composer.Query(schema.QueryData{Name: t.Name, Selector: t.Selector})
	})
	if err != nil {
		return nil, domain.NewError(domain.StageGenerate, "", "failed to compose targets", err)
	}

	var body block
	for _, g := range r.in.Suite.Groups {
		if g.Disabled {
			continue
		}
		f, err := r.group(g)
		if err != nil {
			return nil, err
		}
		body.add(f)
	}

	interactive := append([]string{}, body.interactive...)
	src, err := r.schema.Composer.Suite(schema.SuiteData{
		Title:            r.in.Suite.Title,
		Targets:          targets,
		Suite:            r.in.Suite,
		Runner:           r.in.Runner,
		Env:              r.in.Env,
		Options:          r.in.Options,
		ProjectDirectory: r.in.ProjectDirectory,
		OutputDirectory:  r.in.OutputDirectory,
		Interactive:      interactive,
		Body:             body.join(),
	})
	if err != nil {
		return nil, domain.NewError(domain.StageGenerate, "", "failed to compose suite", err)
	}
	return &Result{Source: src, Interactive: interactive}, nil
}
