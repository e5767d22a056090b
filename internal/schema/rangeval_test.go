package schema_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Pecora0/ebmltool/internal/schema"
)

var _ = Describe("ParseRange", func() {
	DescribeTable("parses the schema range grammar",
		func(expr string, want schema.Range) {
			Expect(schema.ParseRange(expr)).To(Equal(want))
		},
		Entry("empty string means no constraint", "",
			schema.Range{Kind: schema.RangeNone},
		),
		Entry("bare integer is an exact match", "1",
			schema.Range{Kind: schema.RangeExact, Numeric: schema.NumericUInteger, Lo: 1, Hi: 1},
		),
		Entry("a larger bare integer", "4518",
			schema.Range{Kind: schema.RangeExact, Numeric: schema.NumericUInteger, Lo: 4518, Hi: 4518},
		),
		Entry("excluded value with a space", "not 0",
			schema.Range{Kind: schema.RangeExcluded, Numeric: schema.NumericUInteger, Lo: 0, Hi: 0},
		),
		Entry("excluded value without a space", "not0",
			schema.Range{Kind: schema.RangeExcluded, Numeric: schema.NumericUInteger, Lo: 0, Hi: 0},
		),
		Entry("inclusive integer span", "1-8",
			schema.Range{Kind: schema.RangeUpLow, Numeric: schema.NumericUInteger, Lo: 1, LoInclusive: true, Hi: 8, HiInclusive: true},
		),
		Entry("exclusive lower bound, hex-float zero", "> 0x0p+0",
			schema.Range{Kind: schema.RangeLower, Numeric: schema.NumericFloat, Lo: 0.0, LoInclusive: false},
		),
		Entry("inclusive two-sided hex-float span", ">= -0xB4p+0, <= 0xB4p+0",
			schema.Range{
				Kind: schema.RangeUpLow, Numeric: schema.NumericFloat,
				Lo: -180.0, LoInclusive: true,
				Hi: 180.0, HiInclusive: true,
			},
		),
	)

	It("treats an unrecognized token as a best-effort miss, not an error", func() {
		Expect(schema.ParseRange("banana")).To(Equal(schema.Range{Kind: schema.RangeNone}))
	})

	It("picks the unsigned-integer reading when both parses consume the whole token", func() {
		got := schema.ParseRange("42")
		Expect(got.Numeric).To(Equal(schema.NumericUInteger))
	})
})
