package schema_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Pecora0/ebmltool/internal/schema"
)

var _ = Describe("Ingest", func() {
	It("merges user elements over the builtin table, preserving builtin order", func() {
		doc := `<?xml version="1.0"?>
<EBMLSchema>
  <element name="Segment" path="\Segment" id="0x18538067" type="master"/>
  <element name="Cues" path="\Segment\Cues" id="0x1C53BB6B" type="master"/>
</EBMLSchema>`

		table, err := schema.Ingest(strings.NewReader(doc), schema.Builtin())
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Len()).To(Equal(schema.Builtin().Len() + 2))

		elems := table.Elements()
		Expect(elems[0].Name()).To(Equal("EBML"))
		Expect(elems[len(elems)-2].Name()).To(Equal("Segment"))
		Expect(elems[len(elems)-1].Name()).To(Equal("Cues"))

		name, ok := table.Name(0x1A45DFA3)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("EBML"))

		name, ok = table.Name(0x18538067)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("Segment"))

		Expect(table.IsParent(0x18538067, 0x1C53BB6B)).To(BeTrue())
	})

	It("lets a user schema redefine a builtin ID in place", func() {
		doc := `<?xml version="1.0"?>
<EBMLSchema>
  <element name="DocTypeRenamed" path="\EBML\DocType" id="0x4282" type="string"/>
</EBMLSchema>`

		table, err := schema.Ingest(strings.NewReader(doc), schema.Builtin())
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Len()).To(Equal(schema.Builtin().Len()))

		name, ok := table.Name(0x4282)
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("DocTypeRenamed"))
	})

	It("does not mutate the base table", func() {
		base := schema.Builtin()
		baseLen := base.Len()

		doc := `<?xml version="1.0"?>
<EBMLSchema>
  <element name="Segment" path="\Segment" id="0x18538067" type="master"/>
</EBMLSchema>`
		_, err := schema.Ingest(strings.NewReader(doc), base)
		Expect(err).NotTo(HaveOccurred())
		Expect(base.Len()).To(Equal(baseLen))
	})

	It("collects every malformed element's error instead of stopping at the first", func() {
		doc := `<?xml version="1.0"?>
<EBMLSchema>
  <element name="Bad1" path="\Bad1" id="not-hex" type="master"/>
  <element name="Bad2" path="\Bad2" id="0x1" type="not-a-type"/>
  <element name="Good" path="\Good" id="0x2" type="uinteger"/>
</EBMLSchema>`

		_, err := schema.Ingest(strings.NewReader(doc), schema.NewTable())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Bad1"))
		Expect(err.Error()).To(ContainSubstring("Bad2"))
	})

	It("rejects malformed XML outright", func() {
		_, err := schema.Ingest(strings.NewReader("<EBMLSchema"), schema.NewTable())
		Expect(err).To(HaveOccurred())
	})
})
