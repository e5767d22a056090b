package schema_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Pecora0/ebmltool/internal/schema"
)

var _ = Describe("ParsePath", func() {
	DescribeTable("parses the schema path grammar",
		func(path string, want schema.Path) {
			got, err := schema.ParsePath(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("single named segment", `\Files`,
			schema.Path{{Name: "Files"}},
		),
		Entry("nested named segments with a recursive leaf", `\Segment\Chapters\EditionEntry\+ChapterAtom`,
			schema.Path{
				{Name: "Segment"},
				{Name: "Chapters"},
				{Name: "EditionEntry"},
				{Name: "ChapterAtom", Recursive: true},
			},
		),
		Entry("global placeholder with a lower bound only", `\(1-\)CRC-32`,
			schema.Path{
				{Global: true, Min: 1, Max: schema.Unbounded},
				{Name: "CRC-32"},
			},
		),
		Entry("global placeholder with neither bound", `\(-\)Void`,
			schema.Path{
				{Global: true, Min: 0, Max: schema.Unbounded},
				{Name: "Void"},
			},
		),
	)

	It("rejects a path missing the leading backslash", func() {
		_, err := schema.ParsePath("Files")
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty segment", func() {
		_, err := schema.ParsePath(`\Segment\\Chapters`)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a path deeper than MaxDepth", func() {
		deep := ""
		for i := 0; i < schema.MaxDepth+1; i++ {
			deep += `\X`
		}
		_, err := schema.ParsePath(deep)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Path.IsParentOf", func() {
	It("matches a named parent against its named child", func() {
		parent, err := schema.ParsePath(`\Segment\Chapters`)
		Expect(err).NotTo(HaveOccurred())
		child, err := schema.ParsePath(`\Segment\Chapters\EditionEntry`)
		Expect(err).NotTo(HaveOccurred())
		Expect(parent.IsParentOf(child)).To(BeTrue())
	})

	It("rejects a grandparent as a parent", func() {
		parent, err := schema.ParsePath(`\Segment`)
		Expect(err).NotTo(HaveOccurred())
		child, err := schema.ParsePath(`\Segment\Chapters\EditionEntry`)
		Expect(err).NotTo(HaveOccurred())
		Expect(parent.IsParentOf(child)).To(BeFalse())
	})

	It("treats a global placeholder as matching any segment within its bound", func() {
		placeholder := schema.Path{{Global: true, Min: 1, Max: schema.Unbounded}}
		Expect(placeholder.IsParentOf(schema.Path{{Name: "Anything"}, {Name: "Leaf"}})).To(BeTrue())
		Expect(placeholder.IsParentOf(nil)).To(BeFalse())
	})

	It("rejects a global placeholder whose bound excludes the child's depth", func() {
		placeholder := schema.Path{{Global: true, Min: 3, Max: 5}}
		Expect(placeholder.IsParentOf(schema.Path{{Name: "TooShallow"}, {Name: "Leaf"}})).To(BeFalse())
	})

	It("never lets a global child segment satisfy a named parent segment", func() {
		parent, err := schema.ParsePath(`\Segment`)
		Expect(err).NotTo(HaveOccurred())
		child := schema.Path{{Name: "Segment"}, {Global: true, Min: 0, Max: math.MaxUint64}}
		Expect(parent.IsParentOf(child)).To(BeFalse())
	})
})
