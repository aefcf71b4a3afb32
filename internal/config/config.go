package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/suitegen/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Project     ProjectConfig     `yaml:"project"`
	Output      OutputConfig      `yaml:"output"`
	Runner      string            `yaml:"runner"`
	Options     domain.Options    `yaml:"options"`
	Interactive InteractiveConfig `yaml:"interactive"`
	Templates   TemplateConfig    `yaml:"templates"`
	Logging     LoggingConfig     `yaml:"logging"`
	DryRun      bool              `yaml:"dry_run"`
}

type ProjectConfig struct {
	Directory    string   `yaml:"directory"`
	Include      []string `yaml:"include"`
	Exclude      []string `yaml:"exclude"`
	Recursive    *bool    `yaml:"recursive"` // pointer to distinguish unset from false
	SnippetsFile string   `yaml:"snippets_file"`
	EnvFile      string   `yaml:"env_file"`
}

type OutputConfig struct {
	Directory           string `yaml:"directory"`
	FilePrefix          string `yaml:"file_prefix"`
	FileSuffix          string `yaml:"file_suffix"`
	CleanBeforeGenerate bool   `yaml:"clean_before_generate"`
}

type InteractiveConfig struct {
	IllegalMethods []string `yaml:"illegal_methods"`
}

type TemplateConfig struct {
	Directory string `yaml:"directory"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError(domain.StageConfig, path, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError(domain.StageConfig, path, "failed to parse config file", err)
	}

	return cfg, nil
}

// RunnerValue returns the configured runner as a domain.Runner.
func (c *Config) RunnerValue() domain.Runner {
	return domain.Runner(c.Runner)
}
