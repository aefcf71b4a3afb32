// Package export runs the project pipeline: scan → load → generate → write.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/suitegen/internal/config"
	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/generator"
	"github.com/fjglira/suitegen/internal/project"
	"github.com/fjglira/suitegen/internal/scanner"
)

// Exporter generates one spec file per suite found in a project.
type Exporter struct {
	scanner scanner.Scanner
	gen     *generator.Generator
	log     *logrus.Logger
}

// NewExporter creates an Exporter.
func NewExporter(s scanner.Scanner, gen *generator.Generator, log *logrus.Logger) *Exporter {
	return &Exporter{
		scanner: s,
		gen:     gen,
		log:     log,
	}
}

// Export runs the full pipeline and returns the paths written (or, in dry-run
// mode, the paths that would have been written).
func (e *Exporter) Export(cfg *config.Config) ([]string, error) {
	// Step 1: Clean output directory if configured
	if cfg.Output.CleanBeforeGenerate && !cfg.DryRun {
		e.log.Debugf("Cleaning output directory: %s", cfg.Output.Directory)
		if err := cleanOutputDir(cfg.Output.Directory, cfg.Output.FileSuffix); err != nil {
			return nil, domain.NewError(domain.StageWrite, cfg.Output.Directory, "failed to clean output directory", err)
		}
	}

	// Step 2: Scan for suite files
	files, err := e.scanner.Scan(cfg.Project.Directory, cfg.Project.Include, cfg.Project.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		e.log.Warn("No suite files found")
		return nil, nil
	}
	e.log.Infof("Found %d suite file(s)", len(files))

	// Step 3: Shared inputs
	snippets, err := project.LoadSnippets(projectPath(cfg, cfg.Project.SnippetsFile))
	if err != nil {
		return nil, err
	}
	env, err := project.LoadEnv(projectPath(cfg, cfg.Project.EnvFile))
	if err != nil {
		return nil, err
	}

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
			return nil, domain.NewError(domain.StageWrite, cfg.Output.Directory, "failed to create output directory", err)
		}
	}

	// Step 4: Generate and write, one file per suite
	var written []string
	for _, path := range files {
		e.log.Debugf("Processing: %s", path)

		suite, err := project.LoadSuite(path)
		if err != nil {
			return written, err
		}

		res, err := e.gen.Generate(generator.Input{
			Suite:            *suite,
			Snippets:         snippets,
			Runner:           cfg.RunnerValue(),
			ProjectDirectory: cfg.Project.Directory,
			OutputDirectory:  cfg.Output.Directory,
			Env:              env,
			Options:          cfg.Options,
		})
		if err != nil {
			if ge, ok := domain.AsGeneratorError(err); ok && ge.File == "" {
				ge.File = path
			}
			return written, err
		}

		outputPath := filepath.Join(cfg.Output.Directory, buildOutputFilename(path, cfg.Output))
		written = append(written, outputPath)

		if cfg.DryRun {
			e.log.Infof("[DRY-RUN] Would write: %s", outputPath)
			e.log.Debugf("[DRY-RUN] Content:\n%s", res.Source)
			continue
		}

		e.log.WithField("interactive", len(res.Interactive)).Infof("Writing: %s", outputPath)
		if err := os.WriteFile(outputPath, []byte(res.Source), 0644); err != nil {
			return written, domain.NewError(domain.StageWrite, outputPath, "failed to write output file", err)
		}
	}

	e.log.Info("Generation complete")
	return written, nil
}

func projectPath(cfg *config.Config, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Project.Directory, name)
}

// buildOutputFilename maps a suite file to its spec file name, e.g.
// "suites/Login Flow.yml" → "<prefix>login_flow<suffix>".
func buildOutputFilename(suitePath string, output config.OutputConfig) string {
	base := filepath.Base(suitePath)
	name := sanitizeName(strings.TrimSuffix(base, filepath.Ext(base)))
	return fmt.Sprintf("%s%s%s", output.FilePrefix, name, output.FileSuffix)
}

// sanitizeName lowercases name and keeps only [a-z0-9_-], turning spaces into underscores.
func sanitizeName(name string) string {
	name = strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	var b strings.Builder
	for _, c := range name {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '-' {
			b.WriteRune(c)
		}
	}
	result := b.String()
	for strings.Contains(result, "__") {
		result = strings.ReplaceAll(result, "__", "_")
	}
	return strings.Trim(result, "_")
}

// cleanOutputDir removes previously generated spec files from dir.
func cleanOutputDir(dir, suffix string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}
