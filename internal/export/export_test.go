package export_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/fjglira/suitegen/internal/config"
	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/export"
	"github.com/fjglira/suitegen/internal/generator"
	"github.com/fjglira/suitegen/internal/scanner"
	tmpl "github.com/fjglira/suitegen/internal/template"
)

var fixtureProject = filepath.Join("..", "..", "testdata", "project")

// copyProject copies the fixture project (minus node_modules) into dst.
func copyProject(dst string) {
	for _, rel := range []string{"login.yml", "suites/checkout.yaml", ".puppetry.snippets.yml", ".env"} {
		data, err := os.ReadFile(filepath.Join(fixtureProject, rel))
		Expect(err).ToNot(HaveOccurred())
		target := filepath.Join(dst, rel)
		Expect(os.MkdirAll(filepath.Dir(target), 0755)).To(Succeed())
		Expect(os.WriteFile(target, data, 0644)).To(Succeed())
	}
}

func readFile(path string) string {
	data, err := os.ReadFile(path)
	Expect(err).ToNot(HaveOccurred())
	return string(data)
}

var _ = Describe("Exporter", func() {
	var (
		exp        *export.Exporter
		cfg        *config.Config
		projectDir string
		outputDir  string
	)

	BeforeEach(func() {
		log := logrus.New()
		log.SetOutput(io.Discard)

		var err error
		projectDir, err = os.MkdirTemp("", "suitegen-project-*")
		Expect(err).ToNot(HaveOccurred())
		outputDir, err = os.MkdirTemp("", "suitegen-out-*")
		Expect(err).ToNot(HaveOccurred())
		copyProject(projectDir)

		cfg = config.DefaultConfig()
		cfg.Project.Directory = projectDir
		cfg.Output.Directory = outputDir

		engine, err := tmpl.NewEngine("")
		Expect(err).ToNot(HaveOccurred())
		sch, err := engine.Schema()
		Expect(err).ToNot(HaveOccurred())
		gen, err := generator.New(sch, generator.WithLogger(log))
		Expect(err).ToNot(HaveOccurred())

		exp = export.NewExporter(scanner.NewScanner(true), gen, log)
	})

	AfterEach(func() {
		os.RemoveAll(projectDir)
		os.RemoveAll(outputDir)
	})

	It("should write one spec file per suite", func() {
		written, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(written).To(ConsistOf(
			filepath.Join(outputDir, "login.spec.js"),
			filepath.Join(outputDir, "checkout.spec.js"),
		))

		login := readFile(filepath.Join(outputDir, "login.spec.js"))
		Expect(login).To(ContainSubstring(`let ENV = {"BASE_URL":"https://example.test","USER":"demo"};`))
		Expect(login).To(ContainSubstring(`test( "logs in with valid credentials {t-login}"`))
		Expect(login).To(ContainSubstring(`await ( await EMAIL() ).type( "demo@example.test" );`))
		Expect(login).ToNot(ContainSubstring("disabled test"))
		// The suite selector wins over the snippet one.
		Expect(login).To(ContainSubstring(`const EMAIL = async () => await bs.query( "#email", "EMAIL" );`))
		Expect(login).To(ContainSubstring(`const LOGIN_LINK = async () => await bs.query( "a.login", "LOGIN_LINK" );`))
	})

	It("should inline snippets referenced by a suite", func() {
		_, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())

		checkout := readFile(filepath.Join(outputDir, "checkout.spec.js"))
		Expect(checkout).To(ContainSubstring("// SNIPPET Sign in: START"))
		Expect(checkout).To(ContainSubstring(`Object.assign( ENV, {"USER":"buyer"} );`))
		Expect(checkout).To(ContainSubstring(`await ( await EMAIL() ).type( "snippet@example.test" );`))
		Expect(checkout).To(ContainSubstring("// SNIPPET Sign in: END"))
	})

	It("should emit command markers for the embedded runner", func() {
		cfg.Runner = string(domain.RunnerEmbedded)
		cfg.Options.InteractiveMode = true
		_, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())

		checkout := readFile(filepath.Join(outputDir, "checkout.spec.js"))
		Expect(checkout).To(ContainSubstring("// COMMAND ID: snippets:snip-login:s-open"))
		Expect(checkout).To(ContainSubstring("// COMMAND ID: g-cart:t-buy:c-viewport"))
		Expect(checkout).To(ContainSubstring(`bs.interactive = ["s-open","s-email"];`))
	})

	It("should write nothing in dry-run mode", func() {
		cfg.DryRun = true
		written, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(written).To(HaveLen(2))

		entries, err := os.ReadDir(outputDir)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("should clean stale spec files but keep other files", func() {
		Expect(os.WriteFile(filepath.Join(outputDir, "stale.spec.js"), []byte("old"), 0644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(outputDir, "jest.config.js"), []byte("keep"), 0644)).To(Succeed())

		_, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(filepath.Join(outputDir, "stale.spec.js")).ToNot(BeAnExistingFile())
		Expect(filepath.Join(outputDir, "jest.config.js")).To(BeAnExistingFile())
	})

	It("should apply the configured prefix and sanitize names", func() {
		Expect(os.WriteFile(filepath.Join(projectDir, "My Search Flow.yml"), []byte("title: Search\n"), 0644)).To(Succeed())
		cfg.Output.FilePrefix = "gen_"
		_, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(filepath.Join(outputDir, "gen_my_search_flow.spec.js")).To(BeAnExistingFile())
	})

	It("should attach the suite path to generation errors", func() {
		broken := "title: Broken\ngroups:\n  - id: g\n    title: G\n    tests:\n      - id: t\n        title: T\n        commands:\n          - id: c\n            target: page\n            method: goto\n"
		Expect(os.WriteFile(filepath.Join(projectDir, "broken.yml"), []byte(broken), 0644)).To(Succeed())

		_, err := exp.Export(cfg)
		Expect(err).To(HaveOccurred())
		ge, ok := domain.AsGeneratorError(err)
		Expect(ok).To(BeTrue())
		Expect(ge.Stage).To(Equal(domain.StageCommand))
		Expect(ge.File).To(Equal(filepath.Join(projectDir, "broken.yml")))
		Expect(ge.Error()).To(ContainSubstring("page.goto"))
	})

	It("should warn and succeed on an empty project", func() {
		empty, err := os.MkdirTemp("", "suitegen-empty-*")
		Expect(err).ToNot(HaveOccurred())
		defer os.RemoveAll(empty)

		cfg.Project.Directory = empty
		written, err := exp.Export(cfg)
		Expect(err).ToNot(HaveOccurred())
		Expect(written).To(BeEmpty())
	})

	Describe("Watch", func() {
		It("should regenerate when a suite file appears", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				done <- exp.Watch(ctx, cfg)
			}()

			Eventually(filepath.Join(outputDir, "login.spec.js"), 5*time.Second).Should(BeAnExistingFile())

			Expect(os.WriteFile(filepath.Join(projectDir, "search.yml"), []byte("title: Search\n"), 0644)).To(Succeed())
			Eventually(filepath.Join(outputDir, "search.spec.js"), 5*time.Second).Should(BeAnExistingFile())

			cancel()
			Eventually(done, 5*time.Second).Should(Receive(BeNil()))
		})
	})
})
