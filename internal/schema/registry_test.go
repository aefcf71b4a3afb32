package schema_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/suitegen/internal/schema"
)

var noop = schema.RendererFunc(func(p schema.MethodParams) (string, error) {
	return p.Method, nil
})

var _ = Describe("Registry", func() {
	var reg *schema.Registry

	BeforeEach(func() {
		reg = schema.NewRegistry()
	})

	It("should resolve registered renderers by kind and method", func() {
		Expect(reg.Register(schema.KindElement, "click", noop)).To(Succeed())

		r, ok := reg.Lookup(schema.KindElement, "click")
		Expect(ok).To(BeTrue())
		out, err := r.Render(schema.MethodParams{Method: "click"})
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("click"))

		_, ok = reg.Lookup(schema.KindPage, "click")
		Expect(ok).To(BeFalse())
	})

	It("should reject duplicates", func() {
		Expect(reg.Register(schema.KindPage, "goto", noop)).To(Succeed())
		err := reg.Register(schema.KindPage, "goto", noop)
		Expect(err).To(MatchError(ContainSubstring("already registered")))
	})

	It("should reject invalid registrations", func() {
		Expect(reg.Register(schema.Kind("frame"), "goto", noop)).To(MatchError(ContainSubstring("unknown target kind")))
		Expect(reg.Register(schema.KindPage, "", noop)).To(MatchError(ContainSubstring("must not be empty")))
		Expect(reg.Register(schema.KindPage, "goto", nil)).To(MatchError(ContainSubstring("must not be nil")))
	})

	It("should panic from MustRegister on invalid input", func() {
		Expect(func() { reg.MustRegister(schema.KindPage, "", noop) }).To(Panic())
	})

	It("should list methods sorted", func() {
		reg.MustRegister(schema.KindElement, "type", noop)
		reg.MustRegister(schema.KindElement, "click", noop)
		Expect(reg.Methods(schema.KindElement)).To(Equal([]string{"click", "type"}))
		Expect(reg.Methods(schema.KindPage)).To(BeEmpty())
	})
})

var _ = Describe("KindOf", func() {
	It("should map the page target to KindPage", func() {
		Expect(schema.KindOf("page")).To(Equal(schema.KindPage))
		Expect(schema.KindOf("SUBMIT")).To(Equal(schema.KindElement))
		Expect(schema.KindOf("Page")).To(Equal(schema.KindElement))
	})
})

var _ = Describe("Schema", func() {
	It("should require a registry and a composer", func() {
		var nilSchema *schema.Schema
		Expect(nilSchema.Validate()).To(HaveOccurred())
		Expect((&schema.Schema{}).Validate()).To(MatchError(ContainSubstring("registry")))
		Expect((&schema.Schema{Methods: schema.NewRegistry()}).Validate()).To(MatchError(ContainSubstring("composer")))
	})
})
