package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fjglira/suitegen/internal/config"
	"github.com/fjglira/suitegen/internal/project"
	"github.com/fjglira/suitegen/internal/scanner"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and every suite in the project",
	Long:  `Loads suitegen.yaml, checks it for invalid values, then loads every suite and the snippet library against the model schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		log.Debugf("Loaded config: %+v", cfg)

		recursive := cfg.Project.Recursive == nil || *cfg.Project.Recursive
		files, err := scanner.NewScanner(recursive).Scan(cfg.Project.Directory, cfg.Project.Include, cfg.Project.Exclude)
		if err != nil {
			return err
		}
		for _, f := range files {
			if _, err := project.LoadSuite(f); err != nil {
				return err
			}
			log.Debugf("Suite %s is valid", f)
		}
		if cfg.Project.SnippetsFile != "" {
			if _, err := project.LoadSnippets(filepath.Join(cfg.Project.Directory, cfg.Project.SnippetsFile)); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %q and %d suite(s) are valid.\n", cfgFile, len(files))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
