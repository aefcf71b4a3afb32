// Package project loads suites, snippet libraries and environments from disk.
package project

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fjglira/suitegen/internal/domain"
)

// LoadSuite reads and validates a suite document and fills in command ancestry.
func LoadSuite(path string) (*domain.Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "failed to read suite", err)
	}
	if err := Validate(KindSuite, data); err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "invalid suite", err)
	}

	var suite domain.Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "failed to parse suite", err)
	}
	NormalizeSuite(&suite)
	return &suite, nil
}

// LoadSnippets reads a snippet library. A missing file yields an empty
// library, so references degrade to no-ops instead of failing.
func LoadSnippets(path string) (*domain.SnippetLibrary, error) {
	lib := &domain.SnippetLibrary{}
	if path == "" {
		return lib, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return lib, nil
	}
	if err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "failed to read snippets", err)
	}
	if err := Validate(KindSnippets, data); err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "invalid snippets", err)
	}
	if err := yaml.Unmarshal(data, lib); err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "failed to parse snippets", err)
	}
	NormalizeTests(SnippetsGroupID, lib.Tests)
	return lib, nil
}

// LoadEnv reads a dotenv file. A missing file yields an empty environment.
func LoadEnv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, domain.NewError(domain.StageLoad, path, "failed to read env file", err)
	}
	return env, nil
}
