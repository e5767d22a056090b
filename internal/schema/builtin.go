package schema

// Builtin returns a fresh Table seeded with the EBML header elements
// and the two global elements every EBML document carries. Schema
// ingest starts from a copy of this table and merges the user
// schema's <element> definitions over it, so a user schema may
// redefine any of these IDs.
func Builtin() *Table {
	t := NewTable()
	for _, def := range builtinDefs {
		// Builtin definitions are constructed from a literal table
		// below and are known-good; an error here would be a bug in
		// this file, not a runtime condition.
		if err := t.Insert(def); err != nil {
			panic(err)
		}
	}
	return t
}

func mustPath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

var builtinDefs = []ElementDef{
	NewElementDef("EBML", mustPath(`\EBML`), 0x1A45DFA3, TypeMaster, Range{}),
	NewElementDef("EBMLVersion", mustPath(`\EBML\EBMLVersion`), 0x4286, TypeUInteger, Range{}),
	NewElementDef("EBMLReadVersion", mustPath(`\EBML\EBMLReadVersion`), 0x42F7, TypeUInteger, Range{}),
	NewElementDef("EBMLMaxIDLength", mustPath(`\EBML\EBMLMaxIDLength`), 0x42F2, TypeUInteger, Range{}),
	NewElementDef("EBMLMaxSizeLength", mustPath(`\EBML\EBMLMaxSizeLength`), 0x42F3, TypeUInteger, Range{}),
	NewElementDef("DocType", mustPath(`\EBML\DocType`), 0x4282, TypeString, Range{}),
	NewElementDef("DocTypeVersion", mustPath(`\EBML\DocTypeVersion`), 0x4287, TypeUInteger, Range{}),
	NewElementDef("DocTypeReadVersion", mustPath(`\EBML\DocTypeReadVersion`), 0x4285, TypeUInteger, Range{}),

	// Global elements may appear at any depth, hence the unbounded
	// placeholder segment in their path.
	NewElementDef("CRC-32", mustPath(`\(1-\)CRC-32`), 0xBF, TypeBinary, Range{}),
	NewElementDef("Void", mustPath(`\(-\)Void`), 0xEC, TypeBinary, Range{}),
}
