package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fjglira/suitegen/internal/config"
	"github.com/fjglira/suitegen/internal/export"
	"github.com/fjglira/suitegen/internal/generator"
	"github.com/fjglira/suitegen/internal/scanner"
	tmpl "github.com/fjglira/suitegen/internal/template"
)

var watch bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate spec files for every suite in the project",
	Long:  `Scans the project directory for suite files, inlines snippets, and writes one jest-puppeteer spec per suite.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}

		if dryRun {
			cfg.DryRun = true
		}
		if err := configureLogger(cfg.Logging.Level, cfg.Logging.File); err != nil {
			return fmt.Errorf("failed to configure logging: %w", err)
		}

		log.Info("Configuration loaded successfully")
		log.WithField("directory", cfg.Project.Directory).Info("Scanning project")
		log.WithField("path", cfg.Output.Directory).Info("Output directory")

		exp, err := newExporter(cfg)
		if err != nil {
			return err
		}

		if watch {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			log.Info("Watching for changes, press Ctrl+C to stop")
			return exp.Watch(ctx, cfg)
		}

		_, err = exp.Export(cfg)
		return err
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever project files change")
	rootCmd.AddCommand(generateCmd)
}

// newExporter wires all components for cfg.
func newExporter(cfg *config.Config) (*export.Exporter, error) {
	recursive := true
	if cfg.Project.Recursive != nil {
		recursive = *cfg.Project.Recursive
	}

	engine, err := tmpl.NewEngine(cfg.Templates.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to create template engine: %w", err)
	}
	sch, err := engine.Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	gen, err := generator.New(sch,
		generator.WithLogger(log),
		generator.WithInteractiveDenylist(cfg.Interactive.IllegalMethods),
	)
	if err != nil {
		return nil, err
	}

	return export.NewExporter(scanner.NewScanner(recursive), gen, log), nil
}
