package config

import (
	"fmt"
	"strings"

	"github.com/fjglira/suitegen/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	// Project validation
	if cfg.Project.Directory == "" {
		errs = append(errs, "project.directory must not be empty")
	}
	if len(cfg.Project.Include) == 0 {
		errs = append(errs, "project.include must not be empty")
	}

	// Output validation
	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if cfg.Output.FileSuffix == "" {
		errs = append(errs, "output.file_suffix must not be empty")
	} else if !strings.HasSuffix(cfg.Output.FileSuffix, ".js") {
		errs = append(errs, "output.file_suffix must end with .js")
	}

	switch cfg.RunnerValue() {
	case domain.RunnerEmbedded, domain.RunnerExport:
	default:
		errs = append(errs, fmt.Sprintf("runner must be one of: %s, %s (got %q)",
			domain.RunnerExport, domain.RunnerEmbedded, cfg.Runner))
	}

	for i, m := range cfg.Interactive.IllegalMethods {
		if strings.TrimSpace(m) == "" {
			errs = append(errs, fmt.Sprintf("interactive.illegal_methods[%d] must not be empty", i))
		}
	}

	// Validate logging level
	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError(domain.StageConfig, "", fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
