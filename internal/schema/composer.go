package schema

import (
	"errors"

	"github.com/fjglira/suitegen/internal/domain"
)

// QueryData is passed to Composer.Query for every declared target.
type QueryData struct {
	Name     string
	Selector string
}

// TestData is passed to Composer.Test.
type TestData struct {
	Title string
	Body  string
}

// GroupData is passed to Composer.Group.
type GroupData struct {
	Title string
	Body  string
}

// SuiteData is passed to Composer.Suite once per generation run.
type SuiteData struct {
	Title            string
	Targets          string
	Suite            domain.Suite
	Runner           domain.Runner
	Env              map[string]string
	Options          domain.Options
	ProjectDirectory string
	OutputDirectory  string
	Interactive      []string
	Body             string
}

// Composer renders the structural blocks around method fragments.
type Composer interface {
	Query(d QueryData) (string, error)
	Test(d TestData) (string, error)
	Group(d GroupData) (string, error)
	Suite(d SuiteData) (string, error)
}

// Schema is the full capability set a generator renders with.
type Schema struct {
	Methods  *Registry
	Composer Composer
}

// Validate checks that both halves of the schema are present.
func (s *Schema) Validate() error {
	if s == nil {
		return errors.New("schema is nil")
	}
	if s.Methods == nil {
		return errors.New("schema has no method registry")
	}
	if s.Composer == nil {
		return errors.New("schema has no composer")
	}
	return nil
}
