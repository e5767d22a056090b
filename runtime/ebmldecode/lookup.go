// Package ebmldecode is the fixed, schema-agnostic runtime that every
// generated decoder is wired into. It implements a streaming state
// machine: a byte-at-a-time push parser with a bounded nesting stack,
// no I/O and no allocation per Parse call.
//
// The only schema-specific knowledge the engine needs — an element
// ID's name and value Type — comes from a Lookup implementation. The
// code the generator emits for a given schema is exactly one such
// Lookup plus a constructor; internal/schema.Table also implements
// Lookup directly, so the decoder can be driven against a freshly
// ingested schema without generating or compiling anything.
package ebmldecode

import "github.com/Pecora0/ebmltool/internal/schema"

// Type is an element's value type. It is the same enum
// internal/schema.Type defines; the runtime engine never needs to
// interpret EBML schema XML itself; it only dispatches on this value.
type Type = schema.Type

const (
	TypeMaster   = schema.TypeMaster
	TypeUInteger = schema.TypeUInteger
	TypeInteger  = schema.TypeInteger
	TypeUTF8     = schema.TypeUTF8
	TypeString   = schema.TypeString
	TypeDate     = schema.TypeDate
	TypeBinary   = schema.TypeBinary
	TypeFloat    = schema.TypeFloat
)

// Lookup resolves an element ID to its name and value type. Both
// internal/schema.Table and every codegen-emitted table implement it.
type Lookup interface {
	Name(id uint64) (string, bool)
	Type(id uint64) (Type, bool)
}
