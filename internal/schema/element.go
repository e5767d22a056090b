// Package schema implements the normalized EBML schema model: typed
// element definitions, the path and range grammars used in schema
// attributes, and the ingest stage that builds a Table from an XML
// schema document.
//
// Nothing in this package touches bytes of an actual EBML document —
// that is runtime/ebmldecode's job. schema only describes the shape of
// a document: which element IDs exist, what they are named, what Go
// value type they decode to, where in the tree they may appear, and
// what numeric range (if any) their value is constrained to.
package schema

import (
	"fmt"
	"math"
)

// Type is the value type of an element's body, following the EBML
// schema spelling table. The numeric values follow ingest order and
// are observable through the emitted decoder's type field, so they
// must not be reordered.
type Type int

const (
	TypeMaster Type = iota
	TypeUInteger
	TypeInteger
	TypeUTF8
	TypeString
	TypeDate
	TypeBinary
	TypeFloat
)

// typeSpellings maps the schema's textual type attribute to a Type.
var typeSpellings = map[string]Type{
	"master":   TypeMaster,
	"uinteger": TypeUInteger,
	"integer":  TypeInteger,
	"utf-8":    TypeUTF8,
	"string":   TypeString,
	"date":     TypeDate,
	"binary":   TypeBinary,
	"float":    TypeFloat,
}

// typeNames is the inverse of typeSpellings, in ingest order; Type.String
// reads it.
var typeNames = [...]string{
	TypeMaster:   "master",
	TypeUInteger: "uinteger",
	TypeInteger:  "integer",
	TypeUTF8:     "utf-8",
	TypeString:   "string",
	TypeDate:     "date",
	TypeBinary:   "binary",
	TypeFloat:    "float",
}

// String returns the schema spelling of t.
func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType looks up a type spelling from an element's "type" attribute.
// It returns false if the spelling is not one of the eight recognized
// types.
func ParseType(spelling string) (Type, bool) {
	t, ok := typeSpellings[spelling]
	return t, ok
}

// Unbounded represents an omitted upper bound in a path's global
// placeholder segment. Using the maximum representable uint64 avoids a
// separate "is this bounded" flag on every comparison.
const Unbounded = math.MaxUint64

// MaxElements bounds the number of distinct element IDs a Table may
// hold. Real-world schemas (Matroska's is the largest in common use)
// stay well under this.
const MaxElements = 512

// ElementDef is a normalized element definition. It is immutable once
// constructed; Table.Insert is the only way to add one, and a later
// Insert sharing an ID replaces the earlier definition in place.
type ElementDef struct {
	name  string
	path  Path
	id    uint64
	typ   Type
	rng   Range
}

// NewElementDef builds an ElementDef. Callers are expected to be the
// ingest stage (after validating each field) or tests constructing
// fixtures directly; there is no partially-built ElementDef.
func NewElementDef(name string, path Path, id uint64, typ Type, rng Range) ElementDef {
	return ElementDef{name: name, path: path, id: id, typ: typ, rng: rng}
}

// Name returns the element's short identifier.
func (e ElementDef) Name() string { return e.name }

// Path returns the element's parsed path.
func (e ElementDef) Path() Path { return e.path }

// ID returns the element's numeric class ID.
func (e ElementDef) ID() uint64 { return e.id }

// Type returns the element's value type.
func (e ElementDef) Type() Type { return e.typ }

// Range returns the element's numeric constraint, or RangeNone if there
// is none.
func (e ElementDef) Range() Range { return e.rng }

// Table is an ordered map from element ID to its definition. Insertion
// order is preserved across Insert calls, but an Insert whose ID is
// already present replaces the existing definition at its original
// index instead of appending a duplicate — the "redefinition" semantic
// schema ingest uses to let a user schema override the compiled-in
// defaults.
type Table struct {
	order []uint64
	defs  map[uint64]ElementDef
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{defs: make(map[uint64]ElementDef)}
}

// Insert adds or replaces def in the table, keyed by def.ID(). It
// reports an error if the table is at MaxElements capacity and def's ID
// is not already present.
func (t *Table) Insert(def ElementDef) error {
	if _, exists := t.defs[def.id]; !exists {
		if len(t.order) >= MaxElements {
			return &OverflowError{Limit: MaxElements}
		}
		t.order = append(t.order, def.id)
	}
	t.defs[def.id] = def
	return nil
}

// Lookup returns the definition for id, if any.
func (t *Table) Lookup(id uint64) (ElementDef, bool) {
	def, ok := t.defs[id]
	return def, ok
}

// Name implements runtime/ebmldecode.Lookup.
func (t *Table) Name(id uint64) (string, bool) {
	def, ok := t.defs[id]
	if !ok {
		return "", false
	}
	return def.name, true
}

// Type implements runtime/ebmldecode.Lookup. runtime/ebmldecode.Type
// is an alias of this package's Type, so the value is returned as is,
// without this package importing the runtime package.
func (t *Table) Type(id uint64) (Type, bool) {
	def, ok := t.defs[id]
	if !ok {
		return 0, false
	}
	return def.typ, true
}

// Len returns the number of distinct elements in the table.
func (t *Table) Len() int { return len(t.order) }

// Elements returns the table's definitions in insertion order. The
// returned slice is a copy; mutating it does not affect the table.
func (t *Table) Elements() []ElementDef {
	out := make([]ElementDef, len(t.order))
	for i, id := range t.order {
		out[i] = t.defs[id]
	}
	return out
}

// IsParent reports whether the element identified by parentID is the
// structural parent of childID's element, per Path.IsParentOf:
// parentID's path must be exactly one segment shorter than childID's,
// and each of its segments must match the child's segment at the same
// position — a named segment by name, a global placeholder segment by
// that position's depth falling within its [Min, Max] bound. It
// reports false if either ID is not in the table.
func (t *Table) IsParent(parentID, childID uint64) bool {
	parent, ok := t.defs[parentID]
	if !ok {
		return false
	}
	child, ok := t.defs[childID]
	if !ok {
		return false
	}
	return parent.path.IsParentOf(child.path)
}

// OverflowError is returned by Table.Insert when MaxElements would be
// exceeded by a genuinely new ID.
type OverflowError struct {
	Limit int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("schema: element table exceeds capacity (limit %d)", e.Limit)
}
