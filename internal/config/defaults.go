package config

import "github.com/fjglira/suitegen/internal/domain"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Project: ProjectConfig{
			Directory:    ".",
			Include:      []string{"*.yml", "*.yaml"},
			Exclude:      []string{"node_modules/**", "jest-pkg/**", "specs/**"},
			Recursive:    &recursive,
			SnippetsFile: ".puppetry.snippets.yml",
			EnvFile:      ".env",
		},
		Output: OutputConfig{
			Directory:           "specs",
			FileSuffix:          ".spec.js",
			CleanBeforeGenerate: true,
		},
		Runner: string(domain.RunnerExport),
		Interactive: InteractiveConfig{
			IllegalMethods: append([]string(nil), domain.DefaultInteractiveDenylist...),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
