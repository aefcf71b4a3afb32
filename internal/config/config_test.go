package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/suitegen/internal/config"
	"github.com/fjglira/suitegen/internal/domain"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		It("should load minimal config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg).ToNot(BeNil())
			Expect(cfg.Project.Directory).To(Equal("project"))
			Expect(cfg.Output.Directory).To(Equal("specs"))
			Expect(cfg.RunnerValue()).To(Equal(domain.RunnerExport))
			Expect(cfg.Interactive.IllegalMethods).To(Equal([]string{"setViewport"}))
		})

		It("should load full config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Project.Include).To(ContainElements("*.yml", "suites/*.yaml"))
			Expect(cfg.Project.Exclude).To(ContainElement("node_modules/**"))
			Expect(*cfg.Project.Recursive).To(BeFalse())
			Expect(cfg.Project.SnippetsFile).To(Equal("snippets.yml"))
			Expect(cfg.RunnerValue()).To(Equal(domain.RunnerEmbedded))
			Expect(cfg.Options.Trace).To(BeTrue())
			Expect(cfg.Options.InteractiveMode).To(BeTrue())
			Expect(cfg.Options.IgnoreHTTPSErrors).To(BeTrue())
			Expect(cfg.Interactive.IllegalMethods).To(ConsistOf("setViewport", "emulate"))
			Expect(cfg.Output.FilePrefix).To(Equal("gen_"))
			Expect(cfg.Logging.Level).To(Equal("debug"))
		})

		It("should return error for nonexistent file", func() {
			_, err := config.Load("nonexistent.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid YAML", func() {
			tmpFile := filepath.Join(os.TempDir(), "invalid_suitegen.yaml")
			err := os.WriteFile(tmpFile, []byte("{{invalid yaml}}"), 0644)
			Expect(err).ToNot(HaveOccurred())
			defer os.Remove(tmpFile)

			_, loadErr := config.Load(tmpFile)
			Expect(loadErr).To(HaveOccurred())
		})
	})

	Describe("DefaultConfig", func() {
		It("should return config with sensible defaults", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Project.Directory).To(Equal("."))
			Expect(cfg.Project.Include).To(ContainElement("*.yml"))
			Expect(*cfg.Project.Recursive).To(BeTrue())
			Expect(cfg.Output.FileSuffix).To(Equal(".spec.js"))
			Expect(cfg.RunnerValue()).To(Equal(domain.RunnerExport))
			Expect(cfg.Interactive.IllegalMethods).To(Equal(domain.DefaultInteractiveDenylist))
			Expect(cfg.Logging.Level).To(Equal("info"))
			Expect(config.Validate(cfg)).To(Succeed())
		})

		It("should not share the denylist with the domain default", func() {
			cfg := config.DefaultConfig()
			cfg.Interactive.IllegalMethods[0] = "changed"
			Expect(domain.DefaultInteractiveDenylist[0]).To(Equal("setViewport"))
		})
	})

	Describe("Validate", func() {
		It("should pass for valid config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(config.Validate(cfg)).To(Succeed())
		})

		It("should fail if project directory is empty", func() {
			cfg := config.DefaultConfig()
			cfg.Project.Directory = ""
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("project.directory"))
		})

		It("should fail if file suffix doesn't end with .js", func() {
			cfg := config.DefaultConfig()
			cfg.Output.FileSuffix = ".spec.ts"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("file_suffix"))
		})

		It("should fail for an unknown runner", func() {
			cfg := config.DefaultConfig()
			cfg.Runner = "RUNNER_MOCHA"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("runner must be one of"))
		})

		It("should fail for blank illegal methods", func() {
			cfg := config.DefaultConfig()
			cfg.Interactive.IllegalMethods = []string{"setViewport", " "}
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("interactive.illegal_methods[1]"))
		})

		It("should report every violation at once", func() {
			cfg := config.DefaultConfig()
			cfg.Output.Directory = ""
			cfg.Logging.Level = "verbose"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("output.directory"))
			Expect(err.Error()).To(ContainSubstring("logging.level"))
		})
	})
})
