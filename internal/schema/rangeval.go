package schema

import (
	"strconv"
	"strings"
)

// RangeKind tags which shape of numeric constraint a Range carries.
type RangeKind int

const (
	RangeNone RangeKind = iota
	RangeExact
	RangeExcluded
	RangeLower
	RangeUpper
	RangeUpLow
)

// NumericKind distinguishes whether a Range's bounds should be read as
// integers or floating-point values.
type NumericKind int

const (
	NumericUInteger NumericKind = iota
	NumericFloat
)

// Range is the normalized form of an EBML schema "range" attribute.
// Only the fields relevant to Kind are meaningful:
//
//	RangeNone:     nothing
//	RangeExact:    Lo (== Hi)
//	RangeExcluded: Lo (== Hi)
//	RangeLower:    Lo, LoInclusive
//	RangeUpper:    Hi, HiInclusive
//	RangeUpLow:    Lo, LoInclusive, Hi, HiInclusive
type Range struct {
	Kind        RangeKind
	Numeric     NumericKind
	Lo, Hi      float64
	LoInclusive bool
	HiInclusive bool
}

// ParseRange parses the EBML schema textual range syntax: an exact
// value, "not N", "N-M" (inclusive), one-sided relational forms
// (">N", ">=N", "<N", "<=N"), or a comma-joined pair of relational
// forms forming a two-sided bound. Numbers may be decimal integers or
// floating-point literals, including C99 hex-floats ("0x...p+-..."),
// which Go's strconv.ParseFloat accepts directly.
//
// Per-token, whichever parse (integer or float) consumes more of the
// token wins; an equal-length match is treated as an unsigned integer.
// Whitespace is skipped throughout. Empty input yields RangeNone. An
// unrecognized token also yields RangeNone — a deliberate best-effort
// miss, not an error.
func ParseRange(s string) Range {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{Kind: RangeNone}
	}

	if strings.Contains(s, ",") {
		parts := strings.SplitN(s, ",", 2)
		lo, hasLo := parseBound(strings.TrimSpace(parts[0]))
		hi, hasHi := parseBound(strings.TrimSpace(parts[1]))
		if !hasLo || !hasHi || lo.rel == relUnknown || hi.rel == relUnknown {
			return Range{Kind: RangeNone}
		}
		numeric := NumericUInteger
		if lo.isFloat || hi.isFloat {
			numeric = NumericFloat
		}
		return Range{
			Kind:        RangeUpLow,
			Numeric:     numeric,
			Lo:          lo.value,
			LoInclusive: lo.rel == relGE,
			Hi:          hi.value,
			HiInclusive: hi.rel == relLE,
		}
	}

	if rest, ok := stripPrefix(s, "not"); ok {
		tok := parseNumberToken(strings.TrimSpace(rest))
		if !tok.ok {
			return Range{Kind: RangeNone}
		}
		return Range{Kind: RangeExcluded, Numeric: tok.numeric, Lo: tok.value, Hi: tok.value}
	}

	b, ok := parseBound(s)
	if !ok {
		return Range{Kind: RangeNone}
	}
	switch b.rel {
	case relExact:
		return Range{Kind: RangeExact, Numeric: numericOf(b.isFloat), Lo: b.value, Hi: b.value}
	case relGT:
		return Range{Kind: RangeLower, Numeric: numericOf(b.isFloat), Lo: b.value, LoInclusive: false}
	case relGE:
		return Range{Kind: RangeLower, Numeric: numericOf(b.isFloat), Lo: b.value, LoInclusive: true}
	case relLT:
		return Range{Kind: RangeUpper, Numeric: numericOf(b.isFloat), Hi: b.value, HiInclusive: false}
	case relLE:
		return Range{Kind: RangeUpper, Numeric: numericOf(b.isFloat), Hi: b.value, HiInclusive: true}
	case relDash:
		return Range{Kind: RangeUpLow, Numeric: numericOf(b.isFloat), Lo: b.value, LoInclusive: true, Hi: b.hi, HiInclusive: true}
	default:
		return Range{Kind: RangeNone}
	}
}

func numericOf(isFloat bool) NumericKind {
	if isFloat {
		return NumericFloat
	}
	return NumericUInteger
}

type relKind int

const (
	relUnknown relKind = iota
	relExact
	relGT
	relGE
	relLT
	relLE
	relDash
)

type bound struct {
	rel     relKind
	value   float64
	hi      float64 // only for relDash (the "N-M" form)
	isFloat bool
}

// parseBound parses one side of a range expression: ">N", ">=N", "<N",
// "<=N", "N-M", or a bare exact value "N".
func parseBound(s string) (bound, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, ">="):
		tok := parseNumberToken(strings.TrimSpace(s[2:]))
		if !tok.ok {
			return bound{}, false
		}
		return bound{rel: relGE, value: tok.value, isFloat: tok.numeric == NumericFloat}, true
	case strings.HasPrefix(s, "<="):
		tok := parseNumberToken(strings.TrimSpace(s[2:]))
		if !tok.ok {
			return bound{}, false
		}
		return bound{rel: relLE, value: tok.value, isFloat: tok.numeric == NumericFloat}, true
	case strings.HasPrefix(s, ">"):
		tok := parseNumberToken(strings.TrimSpace(s[1:]))
		if !tok.ok {
			return bound{}, false
		}
		return bound{rel: relGT, value: tok.value, isFloat: tok.numeric == NumericFloat}, true
	case strings.HasPrefix(s, "<"):
		tok := parseNumberToken(strings.TrimSpace(s[1:]))
		if !tok.ok {
			return bound{}, false
		}
		return bound{rel: relLT, value: tok.value, isFloat: tok.numeric == NumericFloat}, true
	}

	if dash := findRangeDash(s); dash >= 0 {
		loTok := parseNumberToken(strings.TrimSpace(s[:dash]))
		hiTok := parseNumberToken(strings.TrimSpace(s[dash+1:]))
		if !loTok.ok || !hiTok.ok {
			return bound{}, false
		}
		return bound{
			rel:     relDash,
			value:   loTok.value,
			hi:      hiTok.value,
			isFloat: loTok.numeric == NumericFloat || hiTok.numeric == NumericFloat,
		}, true
	}

	tok := parseNumberToken(s)
	if !tok.ok {
		return bound{}, false
	}
	return bound{rel: relExact, value: tok.value, isFloat: tok.numeric == NumericFloat}, true
}

// findRangeDash locates the '-' separating "N-M", skipping a leading
// sign on either number (so "-1-5" and "1-5" both resolve to the
// separator, not the leading minus).
func findRangeDash(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] == '-' {
			return i
		}
	}
	return -1
}

func stripPrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return "", false
}

type numberToken struct {
	ok      bool
	value   float64
	numeric NumericKind
}

// parseNumberToken parses a single number, preferring whichever of
// strconv.ParseUint / strconv.ParseFloat consumes the longer prefix of
// s. s must be consumed entirely by the winning parse; Go's hex-float
// syntax ("0x0p+0", "-0xB4p+0") is accepted as-is by ParseFloat.
func parseNumberToken(s string) numberToken {
	if s == "" {
		return numberToken{}
	}

	uVal, uErr := strconv.ParseUint(s, 10, 64)
	fVal, fErr := strconv.ParseFloat(s, 64)

	uOK := uErr == nil
	fOK := fErr == nil

	switch {
	case uOK && !fOK:
		return numberToken{ok: true, value: float64(uVal), numeric: NumericUInteger}
	case fOK && !uOK:
		return numberToken{ok: true, value: fVal, numeric: NumericFloat}
	case uOK && fOK:
		// Both consumed the whole token (e.g. "4518"): spec says an
		// equal-length match is treated as an unsigned integer.
		return numberToken{ok: true, value: float64(uVal), numeric: NumericUInteger}
	default:
		return numberToken{}
	}
}
